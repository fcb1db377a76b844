package types

// Outcome tells the caller whether a mutation changed the document.
// NotFound covers a missing document, folder, or entity; lenient callers
// simply ignore it.
type Outcome int

const (
	NotFound Outcome = iota
	Applied
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
