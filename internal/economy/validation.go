package economy

import (
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// validateQuantity validates the transaction quantity
func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidQuantity)
	}
	return nil
}

// checkSellEligibility verifies the inventory holds at least quantity of it.
// An item that is not held counts as zero held.
func (s *service) checkSellEligibility(it domain.Item, quantity int) error {
	held := s.inventory.QuantityOf(it.ID)
	if quantity > held {
		return fmt.Errorf(ErrMsgQuantityExceedsHeldFmt, quantity, it.ID, held, domain.ErrInvalidQuantity)
	}
	return nil
}

// checkBuyEligibility runs the buy preconditions after item resolution:
// shop stock, then funds, then a free slot for a new entry.
func (s *service) checkBuyEligibility(it domain.Item, quantity int) (int, error) {
	stock := s.shop.QuantityOf(it.ID)
	if stock < quantity {
		return 0, fmt.Errorf(ErrMsgNotEnoughStockFmt, stock, it.ID, quantity, domain.ErrInsufficientStock)
	}

	cost := quantity * it.BuyingPrice
	if cost > s.currency {
		return 0, fmt.Errorf(ErrMsgNotEnoughFundsFmt, quantity, it.ID, cost, s.currency, domain.ErrInsufficientFunds)
	}

	if s.inventory.QuantityOf(it.ID) == 0 && s.inventory.SlotCount() >= domain.MaxInventorySlots {
		return 0, fmt.Errorf(ErrMsgNoFreeSlotFmt, it.ID, s.inventory.SlotCount(), domain.MaxInventorySlots, domain.ErrInventoryFull)
	}

	return cost, nil
}
