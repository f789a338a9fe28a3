package economy

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/inventory"
	"github.com/osse101/LootLedger_Go/internal/item"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/loot"
	"github.com/osse101/LootLedger_Go/internal/shop"
)

// SellResult contains the result of a sell operation
type SellResult struct {
	Item              domain.Item `json:"item"`
	Quantity          int         `json:"quantity"`
	MoneyGained       int         `json:"money_gained"`
	Balance           int         `json:"balance"`
	EntryRemoved      bool        `json:"entry_removed"`
	RemainingQuantity int         `json:"remaining_quantity"`
}

// BuyResult contains the result of a buy operation
type BuyResult struct {
	Item              domain.Item `json:"item"`
	Quantity          int         `json:"quantity"`
	Cost              int         `json:"cost"`
	Balance           int         `json:"balance"`
	ShopQuantity      int         `json:"shop_quantity"`
	InventoryQuantity int         `json:"inventory_quantity"`
}

// GatherResult is a loot pass plus the inventory load after it
type GatherResult struct {
	loot.Result
	Weight    float64 `json:"weight"`
	MaxWeight float64 `json:"max_weight"`
	Slots     int     `json:"slots"`
}

// Snapshot is a consistent read of the whole session
type Snapshot struct {
	Inventory []domain.InventoryEntry `json:"inventory"`
	Weight    float64                 `json:"weight"`
	MaxWeight float64                 `json:"max_weight"`
	Slots     int                     `json:"slots"`
	MaxSlots  int                     `json:"max_slots"`
	Currency  int                     `json:"currency"`
	Selection *domain.ItemDetails     `json:"selection,omitempty"`
	Shop      []domain.ShopEntry      `json:"shop"`
}

// Service defines the interface for economy operations.
//
// An empty itemID on Sell, Buy and ItemDetails means the current selection.
// A category of "" on the listing queries means every category.
type Service interface {
	Gather(ctx context.Context) (*GatherResult, error)
	Sell(ctx context.Context, itemID string, quantity int) (*SellResult, error)
	Buy(ctx context.Context, itemID string, quantity int) (*BuyResult, error)
	SelectItem(ctx context.Context, itemID string) (*domain.ItemDetails, error)
	ClearSelection(ctx context.Context)

	InventoryList(ctx context.Context) []domain.InventoryEntry
	InventoryWeight(ctx context.Context) float64
	ShopListByCategory(ctx context.Context, category domain.Category) ([]domain.ShopEntry, error)
	CatalogItems(ctx context.Context, category domain.Category) ([]domain.Item, error)
	CurrencyBalance(ctx context.Context) int
	ItemDetails(ctx context.Context, itemID string) (*domain.ItemDetails, error)
	Snapshot(ctx context.Context) *Snapshot
}

// Config is fixed for the lifetime of a session
type Config struct {
	MaxInventoryWeight float64
	InitialCurrency    int
	GateByProbability  bool
}

// DefaultConfig returns the stock session settings
func DefaultConfig() Config {
	return Config{
		MaxInventoryWeight: domain.DefaultMaxInventoryWeight,
		InitialCurrency:    domain.DefaultInitialCurrency,
	}
}

type service struct {
	catalog   *item.Catalog
	generator loot.Generator
	bus       event.Bus

	// mu guards everything below for the whole of each command and query
	mu        sync.Mutex
	inventory *inventory.Ledger
	shop      *shop.Ledger
	currency  int
	selection string
}

// NewService starts a session: empty inventory, the configured starting
// currency, and a freshly rolled shop stock. A nil roller uses
// dice.DefaultRoller; a nil bus drops events.
func NewService(ctx context.Context, catalog *item.Catalog, cfg Config, roller dice.Roller, bus event.Bus) (Service, error) {
	if catalog == nil {
		return nil, errors.New(ErrMsgNilCatalog)
	}
	if roller == nil {
		roller = dice.DefaultRoller
	}
	if cfg.InitialCurrency < 0 {
		cfg.InitialCurrency = domain.DefaultInitialCurrency
	}

	s := &service{
		catalog:   catalog,
		generator: loot.NewGenerator(loot.Config{GateByProbability: cfg.GateByProbability}, roller),
		bus:       bus,
		inventory: inventory.NewLedger(cfg.MaxInventoryWeight),
		shop:      shop.NewLedger(catalog.All()),
		currency:  cfg.InitialCurrency,
	}

	if err := s.shop.RestockAll(ctx, roller); err != nil {
		return nil, fmt.Errorf(ErrMsgRestockFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgServiceReady,
		"items", catalog.Len(),
		"max_weight", s.inventory.MaxWeight(),
		"currency", s.currency,
		"probability_gate", cfg.GateByProbability)

	return s, nil
}

// resolveLocked maps an item id, or the selection when id is empty, to
// a catalog item. Callers hold s.mu.
func (s *service) resolveLocked(itemID string) (domain.Item, error) {
	if itemID == "" {
		if s.selection == "" {
			return domain.Item{}, domain.ErrNoSelection
		}
		itemID = s.selection
	}
	it, err := s.catalog.Resolve(itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf(ErrMsgResolveItemFailedFmt, itemID, err)
	}
	return it, nil
}

func (s *service) detailsLocked(it domain.Item) *domain.ItemDetails {
	return &domain.ItemDetails{
		Item:              it,
		InventoryQuantity: s.inventory.QuantityOf(it.ID),
		ShopQuantity:      s.shop.QuantityOf(it.ID),
	}
}

// publish sends events after a command has committed. Failures are
// logged only; the command has already happened.
func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}
