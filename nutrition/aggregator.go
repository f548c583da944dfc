// Package nutrition merges the guidance of several ailments into one recommendation.
package nutrition

import (
	"sort"

	"github.com/giygas/protocols-api/entities"
)

// AilmentSource resolves ailments and their catalog position
type AilmentSource interface {
	Lookup(id string) (entities.Ailment, bool)
	AilmentPosition(id string) (int, bool)
}

// Aggregate returns the union of the four guidance lists across the given ailments.
// Unknown ids are skipped. Ailments are visited in catalog order, so the result does
// not depend on the order of ailmentIDs. An empty input yields empty sets, never nil.
func Aggregate(source AilmentSource, ailmentIDs []string) entities.NutritionalFocus {
	focus := entities.NewNutritionalFocus()

	resolved := resolve(source, ailmentIDs)
	if len(resolved) == 0 {
		return focus
	}

	beneficial := newOrderedSet(&focus.BeneficialFoods)
	avoid := newOrderedSet(&focus.AvoidFoods)
	nutrients := newOrderedSet(&focus.KeyNutrients)
	mealFocus := newOrderedSet(&focus.MealPlanFocus)

	for _, a := range resolved {
		support := a.NutritionalSupport
		beneficial.add(support.BeneficialFoods...)
		avoid.add(support.AvoidFoods...)
		nutrients.add(support.KeyNutrients...)
		mealFocus.add(support.MealPlanFocus...)
	}

	return focus
}

type positioned struct {
	pos     int
	ailment entities.Ailment
}

// resolve drops unknown and repeated ids and sorts the rest by catalog position
func resolve(source AilmentSource, ailmentIDs []string) []entities.Ailment {
	seen := make(map[string]bool, len(ailmentIDs))
	found := make([]positioned, 0, len(ailmentIDs))

	for _, id := range ailmentIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		a, ok := source.Lookup(id)
		if !ok {
			continue
		}
		pos, _ := source.AilmentPosition(id)
		found = append(found, positioned{pos: pos, ailment: a})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	out := make([]entities.Ailment, len(found))
	for i, f := range found {
		out[i] = f.ailment
	}
	return out
}

type orderedSet struct {
	items *[]string
	seen  map[string]struct{}
}

func newOrderedSet(items *[]string) *orderedSet {
	return &orderedSet{items: items, seen: make(map[string]struct{})}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if _, dup := s.seen[v]; dup {
			continue
		}
		s.seen[v] = struct{}{}
		*s.items = append(*s.items, v)
	}
}
