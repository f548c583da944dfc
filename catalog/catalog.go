// Package catalog holds the read-only knowledge base of ailments, cleanse protocols
// and the curated ailment to protocol hint table. A Catalog is built once and can be
// shared between goroutines without locking.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/giygas/protocols-api/entities"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hint lists the protocols recommended for one ailment, in preference order
type Hint struct {
	AilmentID   string
	ProtocolIDs []string
}

// Catalog indexes the static tables by identifier. Insertion order is kept so that
// listings and aggregations are deterministic.
type Catalog struct {
	categories  []entities.AilmentCategory
	categoryIdx map[string]int
	ailments    []entities.Ailment
	ailmentIdx  map[string]int
	protocols   []entities.Protocol
	protocolIdx map[string]int
	hints       []Hint
	hintIdx     map[string]int
}

// New builds a catalog. When an identifier is repeated the first entry wins.
func New(categories []entities.AilmentCategory, ailments []entities.Ailment,
	protocols []entities.Protocol, hints []Hint) *Catalog {

	c := &Catalog{
		categories:  categories,
		categoryIdx: make(map[string]int, len(categories)),
		ailments:    ailments,
		ailmentIdx:  make(map[string]int, len(ailments)),
		protocols:   protocols,
		protocolIdx: make(map[string]int, len(protocols)),
		hints:       hints,
		hintIdx:     make(map[string]int, len(hints)),
	}

	for i, cat := range categories {
		if _, exists := c.categoryIdx[cat.ID]; !exists {
			c.categoryIdx[cat.ID] = i
		}
	}
	for i, a := range ailments {
		if _, exists := c.ailmentIdx[a.ID]; !exists {
			c.ailmentIdx[a.ID] = i
		}
	}
	for i, p := range protocols {
		if _, exists := c.protocolIdx[p.ID]; !exists {
			c.protocolIdx[p.ID] = i
		}
	}
	for i, h := range hints {
		if _, exists := c.hintIdx[h.AilmentID]; !exists {
			c.hintIdx[h.AilmentID] = i
		}
	}

	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, constructed on first use
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(builtinCategories(), builtinAilments(), builtinProtocols(), builtinHints())
	})
	return defaultCatalog
}

// Categories returns every category in catalog order
func (c *Catalog) Categories() []entities.AilmentCategory {
	return slices.Clone(c.categories)
}

// Category looks up a category by identifier
func (c *Catalog) Category(id string) (entities.AilmentCategory, bool) {
	i, ok := c.categoryIdx[id]
	if !ok {
		return entities.AilmentCategory{}, false
	}
	return c.categories[i], true
}

// Ailments returns every ailment in catalog order
func (c *Catalog) Ailments() []entities.Ailment {
	return slices.Clone(c.ailments)
}

// Lookup finds an ailment by identifier
func (c *Catalog) Lookup(id string) (entities.Ailment, bool) {
	i, ok := c.ailmentIdx[id]
	if !ok {
		return entities.Ailment{}, false
	}
	return c.ailments[i], true
}

// AilmentPosition returns the catalog position of an ailment
func (c *Catalog) AilmentPosition(id string) (int, bool) {
	i, ok := c.ailmentIdx[id]
	return i, ok
}

// ByCategory returns the ailments of one category in catalog order
func (c *Catalog) ByCategory(categoryID string) []entities.Ailment {
	results := []entities.Ailment{}
	for _, a := range c.ailments {
		if a.Category == categoryID {
			results = append(results, a)
		}
	}
	return results
}

// Search matches the query against name, description and symptoms, ignoring case.
// An ailment matches when any one of those fields contains the query.
func (c *Catalog) Search(query string) []entities.Ailment {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	results := []entities.Ailment{}
	for _, a := range c.ailments {
		if matches(lower, a, needle) {
			results = append(results, a)
		}
	}
	return results
}

func matches(lower cases.Caser, a entities.Ailment, needle string) bool {
	if strings.Contains(lower.String(a.Name), needle) ||
		strings.Contains(lower.String(a.Description), needle) {
		return true
	}
	for _, s := range a.Symptoms {
		if strings.Contains(lower.String(s), needle) {
			return true
		}
	}
	return false
}

// Protocols returns every protocol in catalog order
func (c *Catalog) Protocols() []entities.Protocol {
	return slices.Clone(c.protocols)
}

// Protocol finds a protocol by identifier
func (c *Catalog) Protocol(id string) (entities.Protocol, bool) {
	i, ok := c.protocolIdx[id]
	if !ok {
		return entities.Protocol{}, false
	}
	return c.protocols[i], true
}

// Hints returns the protocol ids recommended for an ailment, nil when the
// ailment has no entry in the hint table
func (c *Catalog) Hints(ailmentID string) []string {
	i, ok := c.hintIdx[ailmentID]
	if !ok {
		return nil
	}
	return slices.Clone(c.hints[i].ProtocolIDs)
}

// HintTable returns the full hint table in declaration order
func (c *Catalog) HintTable() []Hint {
	return slices.Clone(c.hints)
}
