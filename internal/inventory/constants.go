package inventory

// Error format strings; the trailing verb wraps a domain sentinel
const (
	ErrFmtAddQuantity    = "add %d of '%s': %w"
	ErrFmtRemoveQuantity = "remove %d of '%s': %w"
	ErrFmtRemoveMissing  = "remove '%s': %w"
)
