package config

import "errors"

const (
	// Configuration file paths
	ConfigPathItems       = "configs/items/items.json"
	ConfigPathItemsSchema = "configs/schemas/items.schema.json"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ErrMsgParseEnv        = "failed to parse environment: %w"
	ErrMsgInvalidFieldFmt = "config field %s=%v fails %q: %w"
	ErrMsgValidateFmt     = "config validation failed: %v: %w"
)
