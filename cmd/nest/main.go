// Command nest manages schedules, todos and notes stored behind access codes.
package main

import (
	"os"

	"github.com/mesh-intelligence/schedulenest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
