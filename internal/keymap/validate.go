package keymap

import (
	"fmt"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Bounds of a user-typed access code.
const (
	MinUserCodeLength = 4
	MaxUserCodeLength = 8
)

// ValidateUserCode checks the textual contract of a user code: 4 to 8
// characters, lowercase ASCII letters and digits only. The store never calls
// it; the calling layer enforces the format before touching storage.
func ValidateUserCode(code string) error {
	if len(code) < MinUserCodeLength || len(code) > MaxUserCodeLength {
		return fmt.Errorf("%w: must be %d-%d characters", types.ErrInvalidCode, MinUserCodeLength, MaxUserCodeLength)
	}
	for _, r := range code {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return fmt.Errorf("%w: only lowercase letters and digits are allowed", types.ErrInvalidCode)
		}
	}
	return nil
}
