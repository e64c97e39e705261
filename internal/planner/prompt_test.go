package planner

import (
	"strings"
	"testing"

	"ai-fitness-planner/internal/profile"
)

func TestBuildPrompt(t *testing.T) {
	p := profile.UserProfile{
		Name:     "Ann",
		Age:      30,
		Gender:   profile.GenderFemale,
		HeightCM: 165,
		WeightKG: 60.5,
		Goal:     "weight loss",
		Level:    profile.LevelBeginner,
		Dietary:  profile.DietaryVegan,
		Medical:  "knee injury",
		Stress:   profile.StressLow,
	}

	prompt := BuildPrompt(p)

	fields := []string{
		"Name: Ann",
		"Age: 30",
		"Gender: female",
		"Height_cm: 165",
		"Weight_kg: 60.5",
		"Fitness_Goal: weight loss",
		"Fitness_Level: beginner",
		"Dietary_Preference: vegan",
		"Medical_History: knee injury",
		"Stress_Level: low",
	}
	for _, f := range fields {
		if !strings.Contains(prompt, f) {
			t.Errorf("Prompt missing field line %q", f)
		}
	}

	// The fixed preamble and schema text must appear unchanged.
	if !strings.Contains(prompt, "must output a single valid JSON object and nothing else") {
		t.Error("Prompt missing the instructional preamble")
	}
	if !strings.Contains(prompt, `"workoutPlan": [`) {
		t.Error("Prompt missing the JSON schema block")
	}
	if !strings.Contains(prompt, "Aim for up to 7 entries in workoutPlan and dietPlan") {
		t.Error("Prompt missing the constraints block")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	p := profile.UserProfile{Name: "Bob", Age: 40, Goal: "bulk"}
	if BuildPrompt(p) != BuildPrompt(p) {
		t.Error("Expected identical prompts for identical profiles")
	}
}

func TestBuildPromptEmptyFields(t *testing.T) {
	prompt := BuildPrompt(profile.UserProfile{})

	if !strings.Contains(prompt, "Age: \n") {
		t.Error("Expected unset age to render as an empty string")
	}
	if !strings.Contains(prompt, "Medical_History: None") {
		t.Error("Expected empty medical history to render as 'None'")
	}
}
