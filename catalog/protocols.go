package catalog

import "github.com/giygas/protocols-api/entities"

var allRegions = entities.RegionalAvailability{US: true, EU: true, UK: true, Canada: true, Australia: true}

func builtinProtocols() []entities.Protocol {
	return []entities.Protocol{
		{
			ID:              "classic-herbal-trio",
			Name:            "Classic Herbal Trio",
			Type:            entities.ProtocolTraditional,
			Description:     "Black walnut hull, wormwood and clove taken together in a graduated schedule.",
			TargetParasites: []string{"roundworms", "pinworms", "tapeworms"},
			TargetAilments:  []string{"ibs", "candida", "chronic-fatigue"},
			Intensity:       entities.IntensityModerate,
			Duration:        entities.DurationRange{Min: 14, Max: 30, Recommended: 21},
			Phases: []entities.Phase{
				{Name: "Preparation", Days: 5, Description: "Open drainage pathways before introducing herbs.",
					Objectives: []string{"Regular bowel movements", "Hydration"}, KeyActions: []string{"Increase fiber", "Drink 2-3 liters of water daily"}},
				{Name: "Active Cleanse", Days: 14, Description: "Graduated herbal dosing.",
					Objectives: []string{"Reach full herbal dose"}, KeyActions: []string{"Follow dosing ramp", "Take a binder at bedtime"}},
				{Name: "Restoration", Days: 7, Description: "Rebuild the microbiome.",
					Objectives: []string{"Repopulate beneficial flora"}, KeyActions: []string{"Introduce fermented foods", "Continue probiotics"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Black walnut hull", Mechanism: "Tannins and juglone create a hostile environment for parasites",
					Dosage: entities.Dosage{Amount: "500 mg", Frequency: "3x daily", Timing: "before meals"}, Priority: entities.HerbPrimary},
				{Name: "Wormwood", Mechanism: "Sesquiterpene lactones disrupt parasite membranes",
					Dosage: entities.Dosage{Amount: "200 mg", Frequency: "2x daily", Timing: "with meals"}, Priority: entities.HerbPrimary},
				{Name: "Clove", Mechanism: "Eugenol targets eggs and larvae",
					Dosage: entities.Dosage{Amount: "500 mg", Frequency: "3x daily", Timing: "with meals"}, Priority: entities.HerbSecondary},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Activated charcoal", Purpose: "Bind released toxins", Dosage: "500 mg", Timing: "bedtime, away from food"},
				{Name: "Probiotic", Purpose: "Microbiome support", Dosage: "20 billion CFU", Timing: "morning"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "sugar", Recommendation: "Eliminate added sugar", Foods: []string{"candy", "soda", "pastries"}, Rationale: "Sugar feeds parasites and yeast"},
				{Category: "anti-parasitic foods", Recommendation: "Eat daily", Foods: []string{"garlic", "pumpkin seeds", "papaya seeds"}, Rationale: "Natural anti-parasitic compounds"},
			},
			Contraindications: []string{"pregnancy", "breastfeeding", "seizure disorders", "children under 12"},
			SideEffects:       []string{"temporary fatigue", "headache", "digestive upset"},
			EvidenceLevel:     entities.EvidenceTraditional,
			Availability:      allRegions,
		},
		{
			ID:              "ayurvedic-triphala-cleanse",
			Name:            "Ayurvedic Triphala Cleanse",
			Type:            entities.ProtocolAyurvedic,
			Description:     "Gentle digestive renewal built on triphala, neem and a kitchari mono-diet.",
			TargetParasites: []string{"protozoa"},
			TargetAilments:  []string{"leaky-gut", "eczema", "acne", "fatty-liver", "diabetes"},
			Intensity:       entities.IntensityGentle,
			Duration:        entities.DurationRange{Min: 7, Max: 28, Recommended: 14},
			Phases: []entities.Phase{
				{Name: "Purva Karma", Days: 3, Description: "Prepare digestion with warm, simple foods.",
					Objectives: []string{"Kindle digestive fire"}, KeyActions: []string{"Sip ginger tea", "Remove processed foods"}},
				{Name: "Kitchari Reset", Days: 7, Description: "Mono-diet with daily triphala.",
					Objectives: []string{"Rest the gut", "Gentle elimination"}, KeyActions: []string{"Eat kitchari three times daily", "Take triphala at night"}},
				{Name: "Rasayana", Days: 4, Description: "Rejuvenate and reintroduce foods.",
					Objectives: []string{"Rebuild strength"}, KeyActions: []string{"Reintroduce one food per day"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Triphala", Mechanism: "Mild bowel regulation and antioxidant support",
					Dosage: entities.Dosage{Amount: "1 g", Frequency: "1x daily", Timing: "bedtime"}, Priority: entities.HerbPrimary},
				{Name: "Neem", Mechanism: "Bitter antimicrobial support",
					Dosage: entities.Dosage{Amount: "300 mg", Frequency: "2x daily", Timing: "before meals"}, Priority: entities.HerbSecondary},
				{Name: "Vidanga", Mechanism: "Traditional anthelmintic",
					Dosage: entities.Dosage{Amount: "250 mg", Frequency: "2x daily", Timing: "after meals"}, Priority: entities.HerbOptional},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Ghee", Purpose: "Lubricate and nourish tissues", Dosage: "1 tsp", Timing: "morning"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "warm foods", Recommendation: "Favor cooked, warm meals", Foods: []string{"kitchari", "steamed vegetables", "soups"}, Rationale: "Easier digestion"},
			},
			Contraindications: []string{"pregnancy", "active diarrhea"},
			SideEffects:       []string{"looser stools"},
			EvidenceLevel:     entities.EvidenceEmerging,
			Availability:      entities.RegionalAvailability{US: true, EU: true, UK: true, Canada: true},
		},
		{
			ID:              "gentle-digestive-reset",
			Name:            "Gentle Digestive Reset",
			Type:            entities.ProtocolTraditional,
			Description:     "Food-first protocol using pumpkin seeds, papaya and bitters for sensitive systems.",
			TargetParasites: []string{"pinworms"},
			TargetAilments:  []string{"ibs", "leaky-gut"},
			Intensity:       entities.IntensityGentle,
			Duration:        entities.DurationRange{Min: 10, Max: 21, Recommended: 14},
			Phases: []entities.Phase{
				{Name: "Soothe", Days: 5, Description: "Calm the gut with simple foods.",
					Objectives: []string{"Reduce bloating"}, KeyActions: []string{"Low FODMAP meals", "Peppermint tea after meals"}},
				{Name: "Cleanse", Days: 9, Description: "Daily anti-parasitic foods and bitters.",
					Objectives: []string{"Gentle elimination"}, KeyActions: []string{"Quarter cup pumpkin seeds daily", "Papaya seeds with breakfast"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Digestive bitters", Mechanism: "Stimulate bile and stomach acid",
					Dosage: entities.Dosage{Amount: "10 drops", Frequency: "before each meal", Timing: "before meals"}, Priority: entities.HerbPrimary},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Psyllium husk", Purpose: "Bulk and bind", Dosage: "5 g", Timing: "evening with water"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "fiber", Recommendation: "Increase soluble fiber gradually", Foods: []string{"oats", "chia seeds", "cooked carrots"}, Rationale: "Supports regular elimination"},
			},
			Contraindications: []string{"bowel obstruction"},
			SideEffects:       []string{"mild gas"},
			EvidenceLevel:     entities.EvidenceTraditional,
			Availability:      allRegions,
		},
		{
			ID:              "oregano-oil-protocol",
			Name:            "Oregano Oil Protocol",
			Type:            entities.ProtocolModern,
			Description:     "Standardized oil of oregano with caprylic acid for yeast and microbial overgrowth.",
			TargetParasites: []string{"giardia", "blastocystis"},
			TargetAilments:  []string{"candida"},
			Intensity:       entities.IntensityModerate,
			Duration:        entities.DurationRange{Min: 10, Max: 30, Recommended: 20},
			Phases: []entities.Phase{
				{Name: "Loading", Days: 5, Description: "Build up to full dose.",
					Objectives: []string{"Tolerance"}, KeyActions: []string{"Start with one capsule daily"}},
				{Name: "Maintenance", Days: 15, Description: "Full dose with binder support.",
					Objectives: []string{"Reduce overgrowth"}, KeyActions: []string{"Three capsules daily", "Take a binder two hours apart"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Oil of oregano", Mechanism: "Carvacrol disrupts microbial cell walls",
					Dosage: entities.Dosage{Amount: "150 mg", Frequency: "3x daily", Timing: "with meals"}, Priority: entities.HerbPrimary},
				{Name: "Caprylic acid", Mechanism: "Medium chain fatty acid with antifungal action",
					Dosage: entities.Dosage{Amount: "600 mg", Frequency: "2x daily", Timing: "with meals"}, Priority: entities.HerbSecondary},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Saccharomyces boulardii", Purpose: "Protect the microbiome", Dosage: "250 mg", Timing: "morning"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "sugar", Recommendation: "Strict low sugar", Foods: []string{"fruit juice", "honey", "white rice"}, Rationale: "Starve yeast"},
			},
			Contraindications: []string{"pregnancy", "iron deficiency", "allergy to mint family"},
			SideEffects:       []string{"heartburn", "die-off symptoms"},
			EvidenceLevel:     entities.EvidenceModerate,
			Availability:      entities.RegionalAvailability{US: true, Canada: true, Australia: true},
		},
		{
			ID:              "modern-binder-protocol",
			Name:            "Modern Binder Protocol",
			Type:            entities.ProtocolModern,
			Description:     "Mimosa pudica seed and binders for biofilm disruption and toxin removal.",
			TargetParasites: []string{"roundworms", "flukes"},
			TargetAilments:  []string{"eczema", "fatty-liver"},
			Intensity:       entities.IntensityModerate,
			Duration:        entities.DurationRange{Min: 30, Max: 90, Recommended: 60},
			Phases: []entities.Phase{
				{Name: "Binder Introduction", Days: 14, Description: "Start binders before active agents.",
					Objectives: []string{"Establish elimination"}, KeyActions: []string{"Bentonite clay daily", "Track bowel movements"}},
				{Name: "Active Phase", Days: 30, Description: "Mimosa pudica seed twice daily.",
					Objectives: []string{"Disrupt biofilms"}, KeyActions: []string{"Take on an empty stomach", "Continue binders"}},
				{Name: "Recovery", Days: 16, Description: "Taper and restore.",
					Objectives: []string{"Restore gut lining"}, KeyActions: []string{"Add collagen and glutamine"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Mimosa pudica seed", Mechanism: "Gel-forming seed that binds and sweeps the intestinal lining",
					Dosage: entities.Dosage{Amount: "1 g", Frequency: "2x daily", Timing: "empty stomach"}, Priority: entities.HerbPrimary},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Bentonite clay", Purpose: "Bind toxins", Dosage: "1 tsp", Timing: "bedtime"},
				{Name: "L-glutamine", Purpose: "Gut lining repair", Dosage: "5 g", Timing: "morning"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "hydration", Recommendation: "Drink at least 2.5 liters of water daily", Foods: []string{"water", "herbal tea"}, Rationale: "Binders require fluid"},
			},
			Contraindications: []string{"pregnancy", "constipation", "medications requiring precise absorption"},
			SideEffects:       []string{"constipation", "fatigue"},
			EvidenceLevel:     entities.EvidenceEmerging,
			Availability:      entities.RegionalAvailability{US: true, UK: true, Canada: true},
		},
		{
			ID:              "intensive-combination-protocol",
			Name:            "Intensive Combination Protocol",
			Type:            entities.ProtocolCombination,
			Description:     "Multi-agent protocol combining traditional herbs with modern binders and strict diet.",
			TargetParasites: []string{"roundworms", "tapeworms", "flukes", "protozoa"},
			TargetAilments:  []string{"chronic-fatigue", "arthritis", "candida"},
			Intensity:       entities.IntensityIntensive,
			Duration:        entities.DurationRange{Min: 30, Max: 60, Recommended: 45},
			Phases: []entities.Phase{
				{Name: "Preparation", Days: 7, Description: "Drainage and diet transition.",
					Objectives: []string{"Open elimination pathways"}, KeyActions: []string{"Castor oil packs", "Eliminate sugar and alcohol"}},
				{Name: "Elimination", Days: 28, Description: "Full herbal stack with pulsed dosing around the full moon.",
					Objectives: []string{"Maximum anti-parasitic load"}, KeyActions: []string{"Pulse dosing 5 days on 2 off", "Twice daily binders"}},
				{Name: "Restoration", Days: 10, Description: "Rebuild and reassess.",
					Objectives: []string{"Microbiome and energy recovery"}, KeyActions: []string{"High-dose probiotics", "Nutrient dense meals"}},
			},
			Herbs: []entities.HerbComponent{
				{Name: "Black walnut hull", Mechanism: "Juglone anti-parasitic action",
					Dosage: entities.Dosage{Amount: "1 g", Frequency: "3x daily", Timing: "before meals"}, Priority: entities.HerbPrimary},
				{Name: "Wormwood", Mechanism: "Artemisinin and thujone membrane disruption",
					Dosage: entities.Dosage{Amount: "400 mg", Frequency: "2x daily", Timing: "with meals"}, Priority: entities.HerbPrimary},
				{Name: "Berberine", Mechanism: "Broad antimicrobial alkaloid",
					Dosage: entities.Dosage{Amount: "500 mg", Frequency: "2x daily", Timing: "with meals"}, Priority: entities.HerbSecondary},
				{Name: "Mimosa pudica seed", Mechanism: "Biofilm disruption",
					Dosage: entities.Dosage{Amount: "1 g", Frequency: "2x daily", Timing: "empty stomach"}, Priority: entities.HerbOptional},
			},
			Supplements: []entities.SupportingSupplement{
				{Name: "Activated charcoal", Purpose: "Bind toxins", Dosage: "1 g", Timing: "bedtime"},
				{Name: "Magnesium citrate", Purpose: "Keep bowels moving", Dosage: "300 mg", Timing: "evening"},
			},
			DietaryGuidelines: []entities.DietaryGuideline{
				{Category: "elimination diet", Recommendation: "No sugar, grains, dairy or alcohol", Foods: []string{"bread", "milk", "wine"}, Rationale: "Reduce parasite food sources"},
			},
			Contraindications: []string{"pregnancy", "breastfeeding", "liver disease", "kidney disease", "taking anticoagulants"},
			SideEffects:       []string{"significant die-off symptoms", "nausea", "fatigue", "skin breakouts"},
			EvidenceLevel:     entities.EvidenceEmerging,
			Availability:      entities.RegionalAvailability{US: true, Canada: true},
		},
	}
}

// builtinHints is the curated table of protocol suggestions per ailment. It is
// deliberately independent from Protocol.TargetAilments.
func builtinHints() []Hint {
	return []Hint{
		{AilmentID: "ibs", ProtocolIDs: []string{"gentle-digestive-reset", "classic-herbal-trio"}},
		{AilmentID: "candida", ProtocolIDs: []string{"oregano-oil-protocol", "classic-herbal-trio"}},
		{AilmentID: "leaky-gut", ProtocolIDs: []string{"gentle-digestive-reset", "ayurvedic-triphala-cleanse"}},
		{AilmentID: "chronic-fatigue", ProtocolIDs: []string{"classic-herbal-trio", "intensive-combination-protocol"}},
		{AilmentID: "eczema", ProtocolIDs: []string{"ayurvedic-triphala-cleanse", "modern-binder-protocol"}},
		{AilmentID: "acne", ProtocolIDs: []string{"ayurvedic-triphala-cleanse"}},
		{AilmentID: "fatty-liver", ProtocolIDs: []string{"ayurvedic-triphala-cleanse", "modern-binder-protocol"}},
		{AilmentID: "diabetes", ProtocolIDs: []string{"ayurvedic-triphala-cleanse"}},
		{AilmentID: "arthritis", ProtocolIDs: []string{"intensive-combination-protocol"}},
	}
}
