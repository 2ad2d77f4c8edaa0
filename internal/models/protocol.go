package models

const (
	PhaseEliminate = "Week 1: Eliminate + Reset"
	PhaseHealing   = "Week 2: Deepen Healing"
)

type ProtocolDay struct {
	Day      int    `json:"day"`
	Phase    string `json:"phase"`
	Expected string `json:"expected"`
}

type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func ProtocolDays() []ProtocolDay {
	return []ProtocolDay{
		{Day: 1, Phase: PhaseEliminate, Expected: "Starting elimination diet. Body adjusting. No change expected yet."},
		{Day: 2, Phase: PhaseEliminate, Expected: "Possible sugar/gluten withdrawal, mild headache, cravings. Skin unchanged."},
		{Day: 3, Phase: PhaseEliminate, Expected: "Gut beginning to rest during fasting hours. Cravings may peak today."},
		{Day: 4, Phase: PhaseEliminate, Expected: "Withdrawal symptoms easing. Gut flora starting to shift. Some may feel lighter."},
		{Day: 5, Phase: PhaseEliminate, Expected: "Possible die-off reaction, skin may temporarily worsen. This is normal."},
		{Day: 6, Phase: PhaseEliminate, Expected: "Energy stabilizing. Gut inflammation reducing. Skin may still be reactive."},
		{Day: 7, Phase: PhaseEliminate, Expected: "End of Week 1. Cravings significantly reduced. Some may notice less itching."},
		{Day: 8, Phase: PhaseHealing, Expected: "Gut bacteria diversity increasing from fasting + probiotics. Skin calming."},
		{Day: 9, Phase: PhaseHealing, Expected: "Inflammation markers dropping. Existing patches may look less red."},
		{Day: 10, Phase: PhaseHealing, Expected: "Noticeable reduction in itching for most people. Sleep improving."},
		{Day: 11, Phase: PhaseHealing, Expected: "Gut lining repair accelerating. Skin texture may start improving."},
		{Day: 12, Phase: PhaseHealing, Expected: "Patches may be visibly smaller or lighter. Less flaking."},
		{Day: 13, Phase: PhaseHealing, Expected: "Significant improvement expected if food was a major trigger."},
		{Day: 14, Phase: PhaseHealing, Expected: "Protocol complete. Baseline established. Ready for reintroduction phase."},
	}
}

func BodyAreas() []string {
	return []string{"Face/Neck", "Arms/Hands", "Legs/Feet", "Torso/Back"}
}

func SymptomOptions() []string {
	return []string{
		"Itching",
		"Redness",
		"Dry/Flaky",
		"Cracking",
		"Oozing",
		"Swelling",
		"New patches",
		"Sleep disruption",
		"Headache",
		"Bloating",
	}
}

func DietChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "no_dairy", Label: "No dairy"},
		{ID: "no_gluten", Label: "No gluten"},
		{ID: "no_sugar", Label: "No added sugar"},
		{ID: "no_eggs", Label: "No eggs"},
		{ID: "no_soy", Label: "No soy"},
		{ID: "no_nightshades", Label: "No nightshades"},
		{ID: "no_processed", Label: "No processed food"},
		{ID: "probiotic", Label: "Took probiotic"},
		{ID: "raw_garlic", Label: "Ate raw garlic"},
		{ID: "pumpkin_seeds", Label: "Ate pumpkin seeds"},
		{ID: "papaya_seeds", Label: "Ate papaya seeds"},
		{ID: "acv", Label: "Drank ACV"},
		{ID: "turmeric", Label: "Turmeric drink"},
		{ID: "coconut_oil", Label: "Applied coconut oil"},
		{ID: "water", Label: "Drank 1.5L+ water"},
	}
}
