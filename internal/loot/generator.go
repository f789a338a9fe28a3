package loot

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/utils"
)

// Inventory is what a gather pass needs from the inventory ledger
type Inventory interface {
	AddOrMerge(item domain.Item, qty int) (domain.InventoryEntry, bool, error)
	CurrentWeight() float64
	MaxWeight() float64
	SlotCount() int
	CumulativeValue() int
}

// Config tunes the generator
type Config struct {
	// GateByProbability makes the computed probability decide whether an
	// item drops. When false every item under capacity drops.
	GateByProbability bool
}

// Draw is one merge performed by a gather pass
type Draw struct {
	Item        domain.Item `json:"item"`
	Quantity    int         `json:"quantity"`
	Probability float64     `json:"probability"`
	NewEntry    bool        `json:"new_entry"`
}

// Result describes a whole gather pass
type Result struct {
	Draws           []Draw        `json:"draws"`
	Skipped         []domain.Item `json:"skipped,omitempty"`
	CumulativeValue int           `json:"cumulative_value"`
	Halted          bool          `json:"halted"`
	HaltReason      string        `json:"halt_reason,omitempty"`
}

// Generator runs gather passes
type Generator interface {
	Gather(ctx context.Context, items []domain.Item, inv Inventory) (*Result, error)
}

type generator struct {
	cfg    Config
	roller dice.Roller
	rnd    func() float64 // For probability gating (injectable for tests)
}

// NewGenerator creates a generator drawing quantities from roller
func NewGenerator(cfg Config, roller dice.Roller) Generator {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &generator{
		cfg:    cfg,
		roller: roller,
		rnd:    utils.RandomFloat,
	}
}

// Gather walks items in order, drawing a quantity for each and merging
// it into inv. The pass stops for good at the first item found with the
// inventory at its weight ceiling or slot cap.
//
// The cumulative value used for probabilities is taken once, before the
// first draw. If the roller fails, merges already made stay in inv and
// the partial result is returned alongside the error; callers that need
// the pass to be atomic restore inv themselves.
func (g *generator) Gather(ctx context.Context, items []domain.Item, inv Inventory) (*Result, error) {
	log := logger.FromContext(ctx)

	res := &Result{
		Draws:           make([]Draw, 0, len(items)),
		CumulativeValue: inv.CumulativeValue(),
	}

	for _, it := range items {
		if reason := capacityReason(inv); reason != "" {
			res.Halted = true
			res.HaltReason = reason
			log.Info(LogMsgGatherHalted,
				"reason", reason,
				"weight", inv.CurrentWeight(),
				"max_weight", inv.MaxWeight(),
				"slots", inv.SlotCount())
			break
		}

		p := Probability(it.Rarity, res.CumulativeValue)
		if g.cfg.GateByProbability && g.rnd() >= utils.Clamp01(p) {
			log.Debug(LogMsgItemSkipped, "item", it.ID, "probability", p)
			res.Skipped = append(res.Skipped, it)
			continue
		}

		qty, err := utils.RollBetween(g.roller, domain.MinGatherQuantity, domain.MaxGatherQuantity)
		if err != nil {
			return res, fmt.Errorf(ErrFmtRollQuantity, it.ID, err)
		}

		_, created, err := inv.AddOrMerge(it, qty)
		if err != nil {
			return res, fmt.Errorf(ErrFmtMerge, it.ID, err)
		}

		res.Draws = append(res.Draws, Draw{
			Item:        it,
			Quantity:    qty,
			Probability: p,
			NewEntry:    created,
		})
	}

	log.Info(LogMsgGatherCompleted,
		"draws", len(res.Draws),
		"halted", res.Halted,
		"weight", inv.CurrentWeight())

	return res, nil
}

func capacityReason(inv Inventory) string {
	switch {
	case inv.CurrentWeight() >= inv.MaxWeight():
		return domain.HaltReasonWeight
	case inv.SlotCount() >= domain.MaxInventorySlots:
		return domain.HaltReasonSlots
	default:
		return ""
	}
}
