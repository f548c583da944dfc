// Package recommend ranks cleanse protocols against a user's selected ailments and
// offers simple filters over the protocol catalog.
package recommend

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/giygas/protocols-api/entities"
)

// ProtocolSource is the slice of the catalog the recommender needs
type ProtocolSource interface {
	Protocols() []entities.Protocol
	Protocol(id string) (entities.Protocol, bool)
	Hints(ailmentID string) []string
}

// Recommendation is one ranked protocol
type Recommendation struct {
	Protocol        entities.Protocol `json:"protocol"`
	MatchScore      int               `json:"matchScore"`
	Reasoning       string            `json:"reasoning"`
	MatchedAilments []string          `json:"matchedAilments"`
}

type tally struct {
	protocolID string
	ailmentIDs []string
}

// Recommend scores every protocol suggested by the hint table for the given ailments.
// The score is the rounded percentage of selected ailments that suggested the protocol.
// Results are sorted by score, ties keep the order in which protocols were first seen.
func Recommend(source ProtocolSource, ailmentIDs []string) []Recommendation {
	results := []Recommendation{}
	ailmentIDs = distinct(ailmentIDs)
	if len(ailmentIDs) == 0 {
		return results
	}

	var order []*tally
	byProtocol := make(map[string]*tally)

	for _, ailmentID := range ailmentIDs {
		for _, protocolID := range source.Hints(ailmentID) {
			t, ok := byProtocol[protocolID]
			if !ok {
				t = &tally{protocolID: protocolID}
				byProtocol[protocolID] = t
				order = append(order, t)
			}
			if !slices.Contains(t.ailmentIDs, ailmentID) {
				t.ailmentIDs = append(t.ailmentIDs, ailmentID)
			}
		}
	}

	total := len(ailmentIDs)
	for _, t := range order {
		protocol, ok := source.Protocol(t.protocolID)
		if !ok {
			continue
		}
		matched := len(t.ailmentIDs)
		results = append(results, Recommendation{
			Protocol:        protocol,
			MatchScore:      matchScore(matched, total),
			Reasoning:       fmt.Sprintf("Matches %d/%d selected conditions: %s", matched, total, strings.Join(t.ailmentIDs, ", ")),
			MatchedAilments: t.ailmentIDs,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

// distinct drops repeated ids, first appearance wins
func distinct(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func matchScore(matched, total int) int {
	return int(math.Round(float64(matched) / float64(total) * 100))
}

// ByIntensity keeps protocols of the given intensity, catalog order preserved
func ByIntensity(source ProtocolSource, level entities.Intensity) []entities.Protocol {
	return filter(source, func(p entities.Protocol) bool { return p.Intensity == level })
}

// ByType keeps protocols of the given type
func ByType(source ProtocolSource, protocolType entities.ProtocolType) []entities.Protocol {
	return filter(source, func(p entities.Protocol) bool { return p.Type == protocolType })
}

// ByRegion keeps protocols available in the given region
func ByRegion(source ProtocolSource, region entities.Region) []entities.Protocol {
	return filter(source, func(p entities.Protocol) bool { return p.Availability.Available(region) })
}

func filter(source ProtocolSource, keep func(entities.Protocol) bool) []entities.Protocol {
	out := []entities.Protocol{}
	for _, p := range source.Protocols() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
