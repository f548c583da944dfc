package catalog

import "github.com/giygas/protocols-api/entities"

const standardDisclaimer = "This guidance supports, and does not replace, care from a qualified healthcare provider."

func builtinCategories() []entities.AilmentCategory {
	return []entities.AilmentCategory{
		{ID: "cardiovascular", Name: "Heart & Circulation", Description: "Blood pressure, cholesterol and vascular health", Icon: "heart"},
		{ID: "metabolic", Name: "Metabolic Health", Description: "Blood sugar regulation, weight and liver metabolism", Icon: "activity"},
		{ID: "digestive", Name: "Digestive Health", Description: "Gut comfort, microbiome balance and intestinal lining", Icon: "leaf"},
		{ID: "hormonal", Name: "Hormonal Balance", Description: "Thyroid and reproductive hormone support", Icon: "sun"},
		{ID: "musculoskeletal", Name: "Joints & Muscles", Description: "Inflammation, mobility and bone health", Icon: "bone"},
		{ID: "skin", Name: "Skin Health", Description: "Inflammatory and hormonal skin conditions", Icon: "droplet"},
		{ID: "mental_health", Name: "Mind & Sleep", Description: "Stress, mood and sleep quality", Icon: "moon"},
		{ID: "energy", Name: "Energy & Vitality", Description: "Fatigue and low energy states", Icon: "zap"},
		{ID: "respiratory", Name: "Respiratory Health", Description: "Airway inflammation and breathing", Icon: "wind"},
	}
}

func builtinAilments() []entities.Ailment {
	return []entities.Ailment{
		{
			ID:          "hypertension",
			Name:        "High Blood Pressure",
			Category:    "cardiovascular",
			Severity:    entities.SeverityModerate,
			Description: "Persistently elevated arterial pressure that strains the heart and blood vessels.",
			Symptoms:    []string{"Headaches", "Shortness of breath", "Nosebleeds", "Dizziness"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"leafy greens", "berries", "beets", "oats", "bananas", "garlic", "fatty fish"},
				AvoidFoods:      []string{"processed meats", "table salt", "canned soups", "alcohol", "sugary drinks"},
				KeyNutrients:    []string{"potassium", "magnesium", "omega-3 fatty acids", "nitrates"},
				MealPlanFocus:   []string{"DASH eating pattern", "low sodium", "high potassium"},
			},
			MedicalDisclaimer: "Do not stop or change blood pressure medication without consulting your doctor.",
		},
		{
			ID:          "high-cholesterol",
			Name:        "High Cholesterol",
			Category:    "cardiovascular",
			Severity:    entities.SeverityModerate,
			Description: "Elevated LDL cholesterol or triglycerides that raise cardiovascular risk.",
			Symptoms:    []string{"Usually no symptoms", "Yellowish skin deposits", "Chest discomfort"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"oats", "barley", "beans", "nuts", "fatty fish", "olive oil", "avocado"},
				AvoidFoods:      []string{"trans fats", "fried foods", "processed meats", "pastries"},
				KeyNutrients:    []string{"soluble fiber", "omega-3 fatty acids", "plant sterols"},
				MealPlanFocus:   []string{"heart healthy fats", "high fiber", "low saturated fat"},
			},
			MedicalDisclaimer: standardDisclaimer,
		},
		{
			ID:          "diabetes",
			Name:        "Type 2 Diabetes",
			Category:    "metabolic",
			Severity:    entities.SeveritySevere,
			Description: "Impaired insulin response leading to chronically elevated blood glucose.",
			Symptoms:    []string{"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision", "Slow healing wounds"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"leafy greens", "non-starchy vegetables", "legumes", "whole grains", "nuts", "fatty fish", "cinnamon"},
				AvoidFoods:      []string{"sugary drinks", "white bread", "pastries", "sweetened cereals", "fruit juice"},
				KeyNutrients:    []string{"chromium", "magnesium", "fiber", "alpha-lipoic acid"},
				MealPlanFocus:   []string{"low glycemic index", "balanced macronutrients", "consistent meal timing"},
			},
			MedicalDisclaimer: "Monitor blood glucose closely and coordinate dietary changes with your care team, especially when taking insulin.",
		},
		{
			ID:          "fatty-liver",
			Name:        "Non-Alcoholic Fatty Liver",
			Category:    "metabolic",
			Severity:    entities.SeverityModerate,
			Description: "Accumulation of fat in liver cells unrelated to alcohol intake.",
			Symptoms:    []string{"Fatigue", "Discomfort in the upper right abdomen", "Unexplained weight gain"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"coffee", "cruciferous vegetables", "olive oil", "walnuts", "green tea", "garlic"},
				AvoidFoods:      []string{"fructose syrups", "alcohol", "fried foods", "refined carbohydrates"},
				KeyNutrients:    []string{"vitamin E", "choline", "omega-3 fatty acids"},
				MealPlanFocus:   []string{"Mediterranean pattern", "reduced refined sugar", "gradual weight loss"},
			},
			MedicalDisclaimer: standardDisclaimer,
		},
		{
			ID:          "ibs",
			Name:        "Irritable Bowel Syndrome",
			Category:    "digestive",
			Severity:    entities.SeverityModerate,
			Description: "Functional gut disorder with recurring abdominal pain and altered bowel habits.",
			Symptoms:    []string{"Bloating", "Abdominal cramps", "Diarrhea", "Constipation", "Gas"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"peppermint tea", "ginger", "oats", "cooked carrots", "lactose-free yogurt"},
				AvoidFoods:      []string{"high FODMAP foods", "carbonated drinks", "artificial sweeteners", "fried foods"},
				KeyNutrients:    []string{"soluble fiber", "probiotics", "glutamine"},
				MealPlanFocus:   []string{"low FODMAP", "small frequent meals", "gut soothing"},
			},
		},
		{
			ID:          "candida",
			Name:        "Candida Overgrowth",
			Category:    "digestive",
			Severity:    entities.SeverityMild,
			Description: "Excess yeast in the digestive tract associated with sugar-heavy diets.",
			Symptoms:    []string{"Sugar cravings", "Bloating", "Brain fog", "Oral thrush", "Fatigue"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"garlic", "coconut oil", "non-starchy vegetables", "fermented vegetables", "pumpkin seeds"},
				AvoidFoods:      []string{"refined sugar", "alcohol", "white bread", "sweetened yogurt"},
				KeyNutrients:    []string{"probiotics", "caprylic acid", "zinc"},
				MealPlanFocus:   []string{"low sugar", "anti-fungal foods", "microbiome support"},
			},
		},
		{
			ID:          "leaky-gut",
			Name:        "Increased Intestinal Permeability",
			Category:    "digestive",
			Severity:    entities.SeverityMild,
			Description: "Weakened intestinal barrier allowing irritants to pass into circulation.",
			Symptoms:    []string{"Bloating", "Food sensitivities", "Joint pain", "Skin rashes"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"bone broth", "fermented vegetables", "kefir", "cooked vegetables", "fatty fish"},
				AvoidFoods:      []string{"gluten", "alcohol", "refined sugar", "processed foods"},
				KeyNutrients:    []string{"glutamine", "zinc", "probiotics", "collagen"},
				MealPlanFocus:   []string{"gut lining repair", "anti-inflammatory", "whole foods"},
			},
		},
		{
			ID:          "hypothyroidism",
			Name:        "Underactive Thyroid",
			Category:    "hormonal",
			Severity:    entities.SeverityModerate,
			Description: "Insufficient thyroid hormone production slowing metabolism.",
			Symptoms:    []string{"Fatigue", "Weight gain", "Cold intolerance", "Dry skin", "Hair thinning"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"brazil nuts", "seaweed", "eggs", "fatty fish", "pumpkin seeds"},
				AvoidFoods:      []string{"excess raw cruciferous vegetables", "soy isolates", "highly processed foods"},
				KeyNutrients:    []string{"selenium", "iodine", "zinc", "vitamin D"},
				MealPlanFocus:   []string{"thyroid supporting minerals", "steady energy", "whole foods"},
			},
			MedicalDisclaimer: "Take thyroid medication apart from calcium, iron and high-fiber meals as advised by your doctor.",
		},
		{
			ID:          "pcos",
			Name:        "Polycystic Ovary Syndrome",
			Category:    "hormonal",
			Severity:    entities.SeverityModerate,
			Description: "Hormonal disorder with insulin resistance, irregular cycles and elevated androgens.",
			Symptoms:    []string{"Irregular periods", "Acne", "Weight gain", "Excess hair growth"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"leafy greens", "berries", "legumes", "cinnamon", "fatty fish", "nuts"},
				AvoidFoods:      []string{"refined carbohydrates", "sugary drinks", "processed meats"},
				KeyNutrients:    []string{"inositol", "magnesium", "chromium", "omega-3 fatty acids"},
				MealPlanFocus:   []string{"low glycemic index", "anti-inflammatory", "protein at every meal"},
			},
			MedicalDisclaimer: standardDisclaimer,
		},
		{
			ID:          "arthritis",
			Name:        "Inflammatory Arthritis",
			Category:    "musculoskeletal",
			Severity:    entities.SeverityModerate,
			Description: "Joint inflammation causing pain, stiffness and reduced mobility.",
			Symptoms:    []string{"Joint pain", "Morning stiffness", "Swelling", "Reduced range of motion"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"fatty fish", "turmeric", "ginger", "berries", "olive oil", "leafy greens"},
				AvoidFoods:      []string{"fried foods", "refined sugar", "processed meats", "excess omega-6 oils"},
				KeyNutrients:    []string{"omega-3 fatty acids", "curcumin", "vitamin D"},
				MealPlanFocus:   []string{"anti-inflammatory", "Mediterranean pattern"},
			},
			MedicalDisclaimer: standardDisclaimer,
		},
		{
			ID:          "eczema",
			Name:        "Eczema",
			Category:    "skin",
			Severity:    entities.SeverityMild,
			Description: "Chronic inflammatory skin condition with itchy, dry patches.",
			Symptoms:    []string{"Itching", "Dry skin", "Red patches", "Skin rashes"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"fatty fish", "kefir", "sweet potatoes", "leafy greens", "sunflower seeds"},
				AvoidFoods:      []string{"common trigger foods", "refined sugar", "alcohol"},
				KeyNutrients:    []string{"omega-3 fatty acids", "probiotics", "vitamin D", "zinc"},
				MealPlanFocus:   []string{"anti-inflammatory", "skin barrier support"},
			},
		},
		{
			ID:          "acne",
			Name:        "Acne",
			Category:    "skin",
			Severity:    entities.SeverityMild,
			Description: "Clogged and inflamed pores influenced by hormones and blood sugar swings.",
			Symptoms:    []string{"Pimples", "Blackheads", "Oily skin", "Skin inflammation"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"leafy greens", "pumpkin seeds", "fatty fish", "green tea", "berries"},
				AvoidFoods:      []string{"skim milk", "refined sugar", "whey protein", "fried foods"},
				KeyNutrients:    []string{"zinc", "vitamin A", "omega-3 fatty acids"},
				MealPlanFocus:   []string{"low glycemic index", "dairy reduction"},
			},
		},
		{
			ID:          "anxiety",
			Name:        "Anxiety",
			Category:    "mental_health",
			Severity:    entities.SeverityModerate,
			Description: "Persistent worry and nervous system over-activation.",
			Symptoms:    []string{"Restlessness", "Racing heart", "Difficulty concentrating", "Muscle tension"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"chamomile tea", "dark chocolate", "fatty fish", "pumpkin seeds", "fermented vegetables"},
				AvoidFoods:      []string{"caffeine", "alcohol", "energy drinks", "refined sugar"},
				KeyNutrients:    []string{"magnesium", "B vitamins", "omega-3 fatty acids", "L-theanine"},
				MealPlanFocus:   []string{"blood sugar stability", "gut-brain support"},
			},
			MedicalDisclaimer: standardDisclaimer,
		},
		{
			ID:          "insomnia",
			Name:        "Insomnia",
			Category:    "mental_health",
			Severity:    entities.SeverityMild,
			Description: "Difficulty falling or staying asleep.",
			Symptoms:    []string{"Trouble falling asleep", "Night waking", "Daytime fatigue", "Irritability"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"tart cherries", "kiwi", "chamomile tea", "oats", "almonds"},
				AvoidFoods:      []string{"caffeine", "alcohol", "heavy late meals", "spicy foods"},
				KeyNutrients:    []string{"magnesium", "tryptophan", "melatonin precursors"},
				MealPlanFocus:   []string{"evening carbohydrate timing", "caffeine curfew"},
			},
		},
		{
			ID:          "chronic-fatigue",
			Name:        "Chronic Fatigue",
			Category:    "energy",
			Severity:    entities.SeverityModerate,
			Description: "Long-lasting exhaustion not relieved by rest.",
			Symptoms:    []string{"Fatigue", "Brain fog", "Unrefreshing sleep", "Muscle aches"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"eggs", "leafy greens", "lentils", "fatty fish", "nuts", "beets"},
				AvoidFoods:      []string{"refined sugar", "caffeine excess", "alcohol", "processed foods"},
				KeyNutrients:    []string{"iron", "B vitamins", "coenzyme Q10", "magnesium"},
				MealPlanFocus:   []string{"mitochondrial support", "steady energy", "nutrient density"},
			},
		},
		{
			ID:          "asthma",
			Name:        "Asthma",
			Category:    "respiratory",
			Severity:    entities.SeveritySevere,
			Description: "Chronic airway inflammation with episodes of narrowed breathing.",
			Symptoms:    []string{"Wheezing", "Shortness of breath", "Chest tightness", "Coughing"},
			NutritionalSupport: entities.NutritionalSupport{
				BeneficialFoods: []string{"apples", "leafy greens", "fatty fish", "ginger", "carrots"},
				AvoidFoods:      []string{"sulfite-containing foods", "dried fruit with preservatives", "processed meats"},
				KeyNutrients:    []string{"vitamin D", "magnesium", "vitamin C", "omega-3 fatty acids"},
				MealPlanFocus:   []string{"anti-inflammatory", "antioxidant rich"},
			},
			MedicalDisclaimer: "Keep rescue medication available; diet does not replace prescribed asthma treatment.",
		},
	}
}
