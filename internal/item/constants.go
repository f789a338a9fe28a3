package item

// ==================== Paths ====================

const (
	// ItemsSchemaPath is the JSON schema every catalog file must satisfy
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for error construction; the first verb is always a sentinel
const (
	ErrFmtItemAtIndexInvalid  = "%w: item at index %d: %s"
	ErrFmtDuplicateID         = "%w: duplicate item id '%s'"
	ErrFmtNegativeBuyPrice    = "%w: item '%s' has negative buying_price"
	ErrFmtNegativeSellPrice   = "%w: item '%s' has negative selling_price"
	ErrFmtNegativeWeight      = "%w: item '%s' has negative weight"
	ErrFmtUnknownCategory     = "%w: item '%s' has unknown category '%s'"
	ErrFmtUnknownRarity       = "%w: item '%s' has unknown rarity '%s'"
	ErrFmtLookupFailed        = "lookup '%s': %w"
	ErrFmtListCategoryInvalid = "list category '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
