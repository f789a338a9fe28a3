package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/validation"
)

// Config represents the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID           string  `json:"id" validate:"required,max=64"`
	Name         string  `json:"name" validate:"required,max=64"`
	Description  string  `json:"description" validate:"max=512"`
	Category     string  `json:"category" validate:"required"`
	Rarity       string  `json:"rarity" validate:"required"`
	BuyingPrice  int     `json:"buying_price"`
	SellingPrice int     `json:"selling_price"`
	Weight       float64 `json:"weight"`
}

func (d Def) toItem() domain.Item {
	return domain.Item{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Category:     domain.Category(d.Category),
		Rarity:       domain.Rarity(d.Rarity),
		BuyingPrice:  d.BuyingPrice,
		SellingPrice: d.SellingPrice,
		Weight:       d.Weight,
	}
}

// Loader handles loading and validating the item catalog file
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
	}
}

// Load reads, schema-checks and parses a catalog file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the parsed catalog independently of the schema, so
// hand-built configs get the same guarantees as files.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := l.validateDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func (l *itemLoader) validateDef(index int, def *Def, seen map[string]bool) error {
	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtItemAtIndexInvalid, domain.ErrInvalidCatalog, index, err)
	}

	key := normalizeID(def.ID)
	if seen[key] {
		return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, def.ID)
	}
	seen[key] = true

	if !domain.Category(def.Category).IsValid() {
		return fmt.Errorf(ErrFmtUnknownCategory, domain.ErrInvalidCatalog, def.ID, def.Category)
	}
	if !domain.Rarity(def.Rarity).IsValid() {
		return fmt.Errorf(ErrFmtUnknownRarity, domain.ErrInvalidCatalog, def.ID, def.Rarity)
	}

	if def.BuyingPrice < 0 {
		return fmt.Errorf(ErrFmtNegativeBuyPrice, domain.ErrInvalidCatalog, def.ID)
	}
	if def.SellingPrice < 0 {
		return fmt.Errorf(ErrFmtNegativeSellPrice, domain.ErrInvalidCatalog, def.ID)
	}
	if def.Weight < 0 {
		return fmt.Errorf(ErrFmtNegativeWeight, domain.ErrInvalidCatalog, def.ID)
	}

	return nil
}

// LoadCatalog loads, validates and indexes the catalog at path.
// Any failure here is fatal for the session.
func LoadCatalog(ctx context.Context, loader Loader, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	resolved, err := validation.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := loader.Load(resolved)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(config.Items))
	for _, def := range config.Items {
		items = append(items, def.toItem())
	}

	catalog, err := NewCatalog(items)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"path", resolved,
		"version", strings.TrimSpace(config.Version),
		"items", catalog.Len())

	return catalog, nil
}
