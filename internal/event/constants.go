package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

const (
	// ErrMsgHandlerErrorsFmt wraps the joined handler errors of one publish
	ErrMsgHandlerErrorsFmt = "encountered %d errors while handling event %s: %w"
)
