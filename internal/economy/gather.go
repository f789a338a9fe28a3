package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// Gather runs one loot pass over the whole catalog. A pass that finds the
// inventory full reports Halted rather than failing. A pass that fails
// part way leaves the inventory as it was before the pass. The selection
// is left as it was.
func (s *service) Gather(ctx context.Context) (*GatherResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGatherCalled)

	s.mu.Lock()
	cp := s.inventory.Checkpoint()
	res, err := s.generator.Gather(ctx, s.catalog.All(), s.inventory)
	if err != nil {
		s.inventory.Restore(cp)
		log.Warn(LogMsgGatherRolledBack, "error", err)
	}
	out := &GatherResult{
		Weight:    s.inventory.CurrentWeight(),
		MaxWeight: s.inventory.MaxWeight(),
		Slots:     s.inventory.SlotCount(),
	}
	s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf(ErrMsgGatherFailed, err)
	}
	out.Result = *res

	log.Info(LogMsgGatherFinished,
		"draws", len(res.Draws),
		"halted", res.Halted,
		"weight", out.Weight,
		"slots", out.Slots)

	gathered := make([]domain.GatheredItem, 0, len(res.Draws))
	for _, d := range res.Draws {
		gathered = append(gathered, domain.GatheredItem{ItemID: d.Item.ID, Quantity: d.Quantity})
	}
	s.publish(ctx, event.NewItemsGatheredEvent(gathered, res.Halted, res.HaltReason))

	return out, nil
}
