package entities

type ProtocolType string

const (
	ProtocolTraditional ProtocolType = "traditional"
	ProtocolAyurvedic   ProtocolType = "ayurvedic"
	ProtocolModern      ProtocolType = "modern"
	ProtocolCombination ProtocolType = "combination"
)

// Intensity is shared by protocols and cleanse configurations
type Intensity string

const (
	IntensityGentle    Intensity = "gentle"
	IntensityModerate  Intensity = "moderate"
	IntensityIntensive Intensity = "intensive"
)

type EvidenceLevel string

const (
	EvidenceTraditional EvidenceLevel = "traditional"
	EvidenceEmerging    EvidenceLevel = "emerging"
	EvidenceModerate    EvidenceLevel = "moderate"
	EvidenceStrong      EvidenceLevel = "strong"
)

type HerbPriority string

const (
	HerbPrimary   HerbPriority = "primary"
	HerbSecondary HerbPriority = "secondary"
	HerbOptional  HerbPriority = "optional"
)

// Region identifies a market where a protocol's components can be sourced
type Region string

const (
	RegionUS        Region = "us"
	RegionEU        Region = "eu"
	RegionUK        Region = "uk"
	RegionCanada    Region = "canada"
	RegionAustralia Region = "australia"
)

// Regions lists every known region in display order
var Regions = []Region{RegionUS, RegionEU, RegionUK, RegionCanada, RegionAustralia}

// DurationRange is expressed in days
type DurationRange struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	Recommended int `json:"recommended"`
}

// Phase is one ordered stage of a protocol
type Phase struct {
	Name        string   `json:"name"`
	Days        int      `json:"duration"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
	KeyActions  []string `json:"keyActions"`
}

type Dosage struct {
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	Timing    string `json:"timing"`
}

type HerbComponent struct {
	Name      string       `json:"name"`
	Mechanism string       `json:"mechanism"`
	Dosage    Dosage       `json:"dosage"`
	Priority  HerbPriority `json:"priority"`
}

type SupportingSupplement struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Dosage  string `json:"dosage"`
	Timing  string `json:"timing"`
}

type DietaryGuideline struct {
	Category       string   `json:"category"`
	Recommendation string   `json:"recommendation"`
	Foods          []string `json:"foods"`
	Rationale      string   `json:"rationale"`
}

// RegionalAvailability flags where a protocol can be followed with local products
type RegionalAvailability struct {
	US        bool `json:"us"`
	EU        bool `json:"eu"`
	UK        bool `json:"uk"`
	Canada    bool `json:"canada"`
	Australia bool `json:"australia"`
}

// Available reports the flag for a region; unknown regions are unavailable
func (a RegionalAvailability) Available(region Region) bool {
	switch region {
	case RegionUS:
		return a.US
	case RegionEU:
		return a.EU
	case RegionUK:
		return a.UK
	case RegionCanada:
		return a.Canada
	case RegionAustralia:
		return a.Australia
	}
	return false
}

// Protocol is a phased cleanse or longevity regimen.
// TargetAilments holds Ailment IDs that are not required to resolve.
type Protocol struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Type              ProtocolType           `json:"type"`
	Description       string                 `json:"description"`
	TargetParasites   []string               `json:"targetParasites"`
	TargetAilments    []string               `json:"targetAilments"`
	Intensity         Intensity              `json:"intensity"`
	Duration          DurationRange          `json:"duration"`
	Phases            []Phase                `json:"phases"`
	Herbs             []HerbComponent        `json:"herbs"`
	Supplements       []SupportingSupplement `json:"supplements"`
	DietaryGuidelines []DietaryGuideline     `json:"dietaryGuidelines"`
	Contraindications []string               `json:"contraindications"`
	SideEffects       []string               `json:"sideEffects"`
	EvidenceLevel     EvidenceLevel          `json:"evidenceLevel"`
	Availability      RegionalAvailability   `json:"regionalAvailability"`
}

// PhaseDays sums the duration of every phase
func (p Protocol) PhaseDays() int {
	total := 0
	for _, ph := range p.Phases {
		total += ph.Days
	}
	return total
}
