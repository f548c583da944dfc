// Package validation checks catalog integrity at startup and sanitises user input.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/interfaces"
	"github.com/giygas/protocols-api/logging"
)

// Pre-compiled once at package initialization
var (
	// Search input: letters, digits, spaces and a little punctuation
	inputRegex = regexp.MustCompile(`^[\p{L}0-9\s\-\.'’]+$`)

	// Catalog and session identifiers: lowercase slugs or uuids
	identifierRegex = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

	// Substring matching is cheaper than regex for these
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"eval(", "expression(", "url(", "@import",
		// SQL injection
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"--", "/*", "*/",
		// Command injection
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal
		"../", "..\\", "%2e%2e", "file://",
	}
)

const (
	minInputLength   = 2
	maxInputLength   = 50
	maxInputWords    = 6
	maxIdentifierLen = 64
)

// DataValidatorImpl implements interfaces.DataValidator
type DataValidatorImpl struct{}

func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateCatalog returns every structural problem of the catalog joined in one
// error. Any error here is fatal at startup.
func (v *DataValidatorImpl) ValidateCatalog(catalog interfaces.CatalogStore) error {
	var errs []error

	if len(catalog.Ailments()) == 0 {
		errs = append(errs, errors.New("catalog has no ailments"))
	}
	if len(catalog.Protocols()) == 0 {
		errs = append(errs, errors.New("catalog has no protocols"))
	}

	for _, c := range catalog.Categories() {
		if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("category %q: empty id or name", c.ID))
		}
	}

	for _, a := range catalog.Ailments() {
		if err := v.validateAilment(catalog, a); err != nil {
			errs = append(errs, err)
		}
	}

	for _, p := range catalog.Protocols() {
		if err := validateProtocol(p); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (v *DataValidatorImpl) validateAilment(catalog interfaces.CatalogStore, a entities.Ailment) error {
	if err := v.ValidateIdentifier(a.ID); err != nil {
		return fmt.Errorf("ailment %q: %w", a.ID, err)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("ailment %s: empty name", a.ID)
	}
	if _, ok := catalog.Category(a.Category); !ok {
		return fmt.Errorf("ailment %s: unknown category %q", a.ID, a.Category)
	}
	switch a.Severity {
	case entities.SeverityMild, entities.SeverityModerate, entities.SeveritySevere:
	default:
		return fmt.Errorf("ailment %s: invalid severity %q", a.ID, a.Severity)
	}
	return nil
}

func validateProtocol(p entities.Protocol) error {
	if !identifierRegex.MatchString(p.ID) {
		return fmt.Errorf("protocol %q: invalid id", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("protocol %s: empty name", p.ID)
	}

	switch p.Type {
	case entities.ProtocolTraditional, entities.ProtocolAyurvedic, entities.ProtocolModern, entities.ProtocolCombination:
	default:
		return fmt.Errorf("protocol %s: invalid type %q", p.ID, p.Type)
	}
	switch p.Intensity {
	case entities.IntensityGentle, entities.IntensityModerate, entities.IntensityIntensive:
	default:
		return fmt.Errorf("protocol %s: invalid intensity %q", p.ID, p.Intensity)
	}
	switch p.EvidenceLevel {
	case entities.EvidenceTraditional, entities.EvidenceEmerging, entities.EvidenceModerate, entities.EvidenceStrong:
	default:
		return fmt.Errorf("protocol %s: invalid evidence level %q", p.ID, p.EvidenceLevel)
	}

	d := p.Duration
	if d.Min <= 0 || d.Min > d.Recommended || d.Recommended > d.Max {
		return fmt.Errorf("protocol %s: inconsistent duration %d/%d/%d", p.ID, d.Min, d.Recommended, d.Max)
	}

	for _, ph := range p.Phases {
		if ph.Days <= 0 {
			return fmt.Errorf("protocol %s: phase %q has no duration", p.ID, ph.Name)
		}
	}
	for _, h := range p.Herbs {
		switch h.Priority {
		case entities.HerbPrimary, entities.HerbSecondary, entities.HerbOptional:
		default:
			return fmt.Errorf("protocol %s: herb %q has invalid priority %q", p.ID, h.Name, h.Priority)
		}
	}
	return nil
}

// ReportCatalogQuality lists data problems that do not stop the service
func (v *DataValidatorImpl) ReportCatalogQuality(catalog interfaces.CatalogStore) *interfaces.CatalogQualityReport {
	report := &interfaces.CatalogQualityReport{
		AilmentsWithoutSymptoms:  []string{},
		UnresolvedTargetAilments: map[string][]string{},
		PhaseDurationMismatches:  []string{},
		UnresolvedHintProtocols:  []string{},
		ProtocolsWithoutHerbs:    []string{},
	}

	for _, a := range catalog.Ailments() {
		if len(a.Symptoms) == 0 {
			report.AilmentsWithoutSymptoms = append(report.AilmentsWithoutSymptoms, a.ID)
		}
		if a.MedicalDisclaimer == "" {
			report.AilmentsWithoutDisclaimer++
		}

		for _, pid := range catalog.Hints(a.ID) {
			if _, ok := catalog.Protocol(pid); !ok {
				report.UnresolvedHintProtocols = append(report.UnresolvedHintProtocols, a.ID+"->"+pid)
			}
		}
	}

	for _, p := range catalog.Protocols() {
		for _, id := range p.TargetAilments {
			if _, ok := catalog.Lookup(id); !ok {
				report.UnresolvedTargetAilments[p.ID] = append(report.UnresolvedTargetAilments[p.ID], id)
			}
		}
		if len(p.Phases) > 0 && p.PhaseDays() != p.Duration.Recommended {
			report.PhaseDurationMismatches = append(report.PhaseDurationMismatches, p.ID)
		}
		if len(p.Herbs) == 0 {
			report.ProtocolsWithoutHerbs = append(report.ProtocolsWithoutHerbs, p.ID)
		}
	}

	return report
}

// LogCatalogQuality writes the quality report as warnings
func LogCatalogQuality(report *interfaces.CatalogQualityReport) {
	if len(report.PhaseDurationMismatches) > 0 {
		logging.Warn("Protocol phases do not add up to the recommended duration",
			"protocols", report.PhaseDurationMismatches)
	}
	if len(report.UnresolvedHintProtocols) > 0 {
		logging.Warn("Recommendation hints reference unknown protocols",
			"hints", report.UnresolvedHintProtocols)
	}
	if len(report.UnresolvedTargetAilments) > 0 {
		logging.Info("Protocols target ailments outside the catalog",
			"protocols", len(report.UnresolvedTargetAilments))
	}
	if len(report.AilmentsWithoutSymptoms) > 0 {
		logging.Warn("Ailments without symptoms", "ailments", report.AilmentsWithoutSymptoms)
	}
	logging.Debug("Catalog quality report",
		"ailments_without_disclaimer", report.AilmentsWithoutDisclaimer,
		"protocols_without_herbs", len(report.ProtocolsWithoutHerbs))
}

// ValidateInput validates free text search queries
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < minInputLength {
		return fmt.Errorf("input too short: minimum %d characters", minInputLength)
	}

	if len(input) > maxInputLength {
		return fmt.Errorf("input too long: maximum %d characters", maxInputLength)
	}

	if len(strings.Fields(input)) > maxInputWords {
		return fmt.Errorf("search query too complex: maximum %d words allowed", maxInputWords)
	}

	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes and periods are allowed")
	}

	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateIdentifier checks ailment, protocol, session and plan ids
func (v *DataValidatorImpl) ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if len(id) > maxIdentifierLen {
		return fmt.Errorf("identifier too long: maximum %d characters", maxIdentifierLen)
	}
	if !identifierRegex.MatchString(id) {
		return fmt.Errorf("identifier contains invalid characters")
	}
	return nil
}

// hasExcessiveRepetition reports a character repeated more than 10 times in a row
func hasExcessiveRepetition(input string) bool {
	run := 1
	for i := 1; i < len(input); i++ {
		if input[i] == input[i-1] {
			run++
			if run > 10 {
				return true
			}
			continue
		}
		run = 1
	}
	return false
}
