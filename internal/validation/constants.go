package validation

import "errors"

var (
	// ErrSchemaViolation is returned when a document does not satisfy its schema
	ErrSchemaViolation = errors.New("schema validation failed")

	// ErrFileNotFound is returned when a relative path cannot be resolved
	ErrFileNotFound = errors.New("file not found")
)

const (
	ErrMsgReadDataFileFmt  = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFmt    = "failed to load schema %s: %w"
	ErrMsgParseDataFmt     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFmt    = "failed to read schema file: %w"
	ErrMsgParseSchemaFmt   = "failed to parse schema JSON: %w"
	ErrMsgAddResourceFmt   = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFmt = "failed to compile schema: %w"
	ErrMsgValidationFmt    = "validation error: %w"
	ErrMsgGetwdFmt         = "failed to get current directory: %w"
	ErrMsgFileNotFoundFmt  = "%w: %s (searched from %s)"
)
