package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// Buy moves quantity of an item from the shop to the inventory and charges
// its buying price. Checks run in order (quantity, item, stock, funds,
// free slot) and the first failure aborts with nothing changed.
// Weight is not checked; buying may push the inventory past its ceiling.
func (s *service) Buy(ctx context.Context, itemID string, quantity int) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "item", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	res, err := s.buyLocked(itemID, quantity)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemPurchased,
		"item", res.Item.ID,
		"quantity", res.Quantity,
		"cost", res.Cost,
		"balance", res.Balance)

	s.publish(ctx, event.NewItemBoughtEvent(res.Item.ID, res.Quantity, res.Cost, res.Balance))
	return res, nil
}

func (s *service) buyLocked(itemID string, quantity int) (*BuyResult, error) {
	it, err := s.resolveLocked(itemID)
	if err != nil {
		return nil, err
	}
	cost, err := s.checkBuyEligibility(it, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.shop.Adjust(it.ID, -quantity); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustShopFmt, it.ID, err)
	}
	entry, _, err := s.inventory.AddOrMerge(it, quantity)
	if err != nil {
		// put the stock back; nothing else has changed yet
		_ = s.shop.Adjust(it.ID, quantity)
		return nil, fmt.Errorf(ErrMsgAddToInventoryFmt, it.ID, err)
	}
	s.currency -= cost

	return &BuyResult{
		Item:              it,
		Quantity:          quantity,
		Cost:              cost,
		Balance:           s.currency,
		ShopQuantity:      s.shop.QuantityOf(it.ID),
		InventoryQuantity: entry.Quantity,
	}, nil
}
