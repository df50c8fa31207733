package assistant

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"toyota-finder-api/internal/model"
)

// InventoryStore is the slice of the vehicle repository the assistant
// reads. Implementations must treat an empty inventory as nil results,
// not errors.
type InventoryStore interface {
	All(ctx context.Context) ([]model.Vehicle, error)
	SearchByModel(ctx context.Context, name string) ([]model.Vehicle, error)
	MostExpensive(ctx context.Context) (*model.Vehicle, error)
	MostEfficient(ctx context.Context) (*model.Vehicle, error)
}

type priceRange struct {
	lo, hi float64
}

// priceRangeAndMPG aggregates matched rows into price bounds and a
// median combined MPG. The median is the upper-middle element of the
// sorted list (index n/2), kept as-is for answer parity with historical
// output rather than a true statistical median.
func priceRangeAndMPG(rows []model.Vehicle) (*priceRange, *int) {
	if len(rows) == 0 {
		return nil, nil
	}

	pr := &priceRange{lo: rows[0].Price, hi: rows[0].Price}
	var mpgs []float64
	for _, r := range rows {
		if r.Price < pr.lo {
			pr.lo = r.Price
		}
		if r.Price > pr.hi {
			pr.hi = r.Price
		}
		if r.MPGCombined != nil {
			mpgs = append(mpgs, float64(*r.MPGCombined))
		}
	}

	var median *int
	if len(mpgs) > 0 {
		sort.Float64s(mpgs)
		m := int(math.Round(mpgs[len(mpgs)/2]))
		median = &m
	}
	return pr, median
}

const maxTrimsShown = 6

// ruleEngine is the deterministic response generator: recognized intents
// answered straight from inventory aggregates, no external calls.
type ruleEngine struct {
	store  InventoryStore
	logger *zap.Logger
}

func newRuleEngine(store InventoryStore, logger *zap.Logger) *ruleEngine {
	return &ruleEngine{store: store, logger: logger}
}

// answer returns (text, true) when a deterministic rule handled the
// message. Intents are checked in fixed priority order. A store failure
// is logged and reported as unhandled so the resolver falls forward to
// its web/LLM stages instead of surfacing an error.
func (e *ruleEngine) answer(ctx context.Context, message string) (string, bool) {
	if hasIntent(IntentMostExpensive, message) {
		top, err := e.store.MostExpensive(ctx)
		if err != nil {
			e.logger.Warn("inventory lookup failed", zap.Error(err))
			return "", false
		}
		if top == nil {
			return "I don't see any vehicles in our inventory right now.", true
		}
		return fmt.Sprintf("The most expensive Toyota in our inventory is the %d %s %s at %s.",
			top.Year, top.Model, top.Trim, formatMoney(top.Price)), true
	}

	if hasIntent(IntentEfficiency, message) {
		eff, err := e.store.MostEfficient(ctx)
		if err != nil {
			e.logger.Warn("inventory lookup failed", zap.Error(err))
			return "", false
		}
		if eff == nil || eff.MPGCombined == nil {
			return "I don't have MPG data in our inventory right now.", true
		}
		return fmt.Sprintf("Our most fuel-efficient Toyota in inventory is the %d %s %s, around %d MPG combined.",
			eff.Year, eff.Model, eff.Trim, *eff.MPGCombined), true
	}

	if hasIntent(IntentTrims, message) {
		return e.answerTrims(ctx, message)
	}

	if hasIntent(IntentPrice, message) {
		models := extractModels(message)
		if len(models) == 1 {
			return e.answerSinglePrice(ctx, models[0])
		}
		if len(models) >= 2 {
			return e.answerPriceComparison(ctx, models[0], models[1])
		}
		// No model named: fall through to the generic compare check.
	}

	if hasIntent(IntentCompare, message) {
		models := extractModels(message)
		if len(models) < 2 {
			return "Which two Toyota models should I compare?", true
		}
		return e.answerGenericComparison(ctx, models[0], models[1])
	}

	return "", false
}

func (e *ruleEngine) answerTrims(ctx context.Context, message string) (string, bool) {
	models := extractModels(message)
	if len(models) == 0 {
		return "Which Toyota model should I list trims for?", true
	}

	code := models[0]
	rows, err := e.store.SearchByModel(ctx, code)
	if err != nil {
		e.logger.Warn("inventory lookup failed", zap.String("model", code), zap.Error(err))
		return "", false
	}

	seen := make(map[string]struct{})
	var trims []string
	for _, r := range rows {
		tr := strings.TrimSpace(r.Trim)
		if tr == "" {
			continue
		}
		if _, ok := seen[tr]; !ok {
			seen[tr] = struct{}{}
			trims = append(trims, tr)
		}
	}

	name := displayName(code)
	if len(trims) == 0 {
		return fmt.Sprintf("I don't have trims for %s in our inventory.", name), true
	}

	sort.Strings(trims)
	suffix := ""
	if len(trims) > maxTrimsShown {
		trims = trims[:maxTrimsShown]
		suffix = "…"
	}
	return fmt.Sprintf("%s trims in our inventory: %s%s.", name, strings.Join(trims, ", "), suffix), true
}

func (e *ruleEngine) answerSinglePrice(ctx context.Context, code string) (string, bool) {
	rows, err := e.store.SearchByModel(ctx, code)
	if err != nil {
		e.logger.Warn("inventory lookup failed", zap.String("model", code), zap.Error(err))
		return "", false
	}

	pr, median := priceRangeAndMPG(rows)
	name := displayName(code)
	if pr == nil {
		return fmt.Sprintf("I don't have pricing for %s in our inventory.", name), true
	}

	extra := ""
	if median != nil {
		extra = fmt.Sprintf(", ~%d MPG", *median)
	}
	return fmt.Sprintf("%s pricing in our inventory: %s%s.", name, formatMoneyRange(pr.lo, pr.hi), extra), true
}

func (e *ruleEngine) answerPriceComparison(ctx context.Context, a, b string) (string, bool) {
	rowsA, errA := e.store.SearchByModel(ctx, a)
	rowsB, errB := e.store.SearchByModel(ctx, b)
	if errA != nil || errB != nil {
		e.logger.Warn("inventory lookup failed", zap.Error(errA), zap.Error(errB))
		return "", false
	}

	prA, mpgA := priceRangeAndMPG(rowsA)
	prB, mpgB := priceRangeAndMPG(rowsB)
	nameA, nameB := displayName(a), displayName(b)

	switch {
	case prA != nil && prB != nil:
		sa := formatMoneyRange(prA.lo, prA.hi)
		if mpgA != nil {
			sa += fmt.Sprintf(", ~%d MPG", *mpgA)
		}
		sb := formatMoneyRange(prB.lo, prB.hi)
		if mpgB != nil {
			sb += fmt.Sprintf(", ~%d MPG", *mpgB)
		}
		return fmt.Sprintf("%s vs %s: %s vs %s. Choose %s for value/efficiency; %s for space/power.",
			nameA, nameB, sa, sb, nameB, nameA), true
	case prA != nil:
		return fmt.Sprintf("%s: %s; I don't have pricing for %s.", nameA, formatMoneyRange(prA.lo, prA.hi), nameB), true
	case prB != nil:
		return fmt.Sprintf("%s: %s; I don't have pricing for %s.", nameB, formatMoneyRange(prB.lo, prB.hi), nameA), true
	default:
		return "I don't have pricing for those models in our inventory.", true
	}
}

func (e *ruleEngine) answerGenericComparison(ctx context.Context, a, b string) (string, bool) {
	rowsA, errA := e.store.SearchByModel(ctx, a)
	rowsB, errB := e.store.SearchByModel(ctx, b)
	if errA != nil || errB != nil {
		e.logger.Warn("inventory lookup failed", zap.Error(errA), zap.Error(errB))
		return "", false
	}

	prA, mpgA := priceRangeAndMPG(rowsA)
	prB, mpgB := priceRangeAndMPG(rowsB)
	nameA, nameB := displayName(a), displayName(b)

	left := nameA + ": (no price)"
	if prA != nil {
		left = nameA + ": " + formatMoneyRange(prA.lo, prA.hi)
	}
	if mpgA != nil {
		left += fmt.Sprintf(", ~%d MPG", *mpgA)
	}

	right := nameB + ": (no price)"
	if prB != nil {
		right = nameB + ": " + formatMoneyRange(prB.lo, prB.hi)
	}
	if mpgB != nil {
		right += fmt.Sprintf(", ~%d MPG", *mpgB)
	}

	return fmt.Sprintf("%s; %s. Pick %s for value/efficiency; %s for space/power.",
		left, right, nameB, nameA), true
}
