package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// Sell moves quantity of an item from the inventory to the shop and pays
// its selling price. Nothing changes unless every check passes.
func (s *service) Sell(ctx context.Context, itemID string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "item", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	res, err := s.sellLocked(itemID, quantity)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemSold,
		"item", res.Item.ID,
		"quantity", res.Quantity,
		"money_gained", res.MoneyGained,
		"balance", res.Balance,
		"entry_removed", res.EntryRemoved)

	events := []event.Event{event.NewItemSoldEvent(res.Item.ID, res.Quantity, res.MoneyGained, res.Balance)}
	if res.EntryRemoved {
		events = append(events, event.NewInventoryEntryRemovedEvent(res.Item.ID))
	}
	s.publish(ctx, events...)

	return res, nil
}

func (s *service) sellLocked(itemID string, quantity int) (*SellResult, error) {
	it, err := s.resolveLocked(itemID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSellEligibility(it, quantity); err != nil {
		return nil, err
	}

	removed, err := s.inventory.Remove(it.ID, quantity)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRemoveFromInventoryFmt, it.ID, err)
	}
	if err := s.shop.Adjust(it.ID, quantity); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustShopFmt, it.ID, err)
	}
	gained := quantity * it.SellingPrice
	s.currency += gained

	return &SellResult{
		Item:              it,
		Quantity:          quantity,
		MoneyGained:       gained,
		Balance:           s.currency,
		EntryRemoved:      removed,
		RemainingQuantity: s.inventory.QuantityOf(it.ID),
	}, nil
}
