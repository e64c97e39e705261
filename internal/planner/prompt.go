package planner

import (
	"fmt"
	"strconv"

	"ai-fitness-planner/internal/profile"
)

// promptTemplate forces strict JSON output following the declared schema.
// User fields are interpolated verbatim; prompt injection through them is a
// known, accepted risk.
const promptTemplate = `You are an assistant that must output a single valid JSON object and nothing else (no explanation, no markdown, no code fences).

Schema (produce exactly this shape — use empty arrays/strings when needed):
{
  "summary": "short 1-2 sentence overview",
  "workoutPlan": [
    {
      "day": "Day 1",
      "exercises": [
        { "name": "Exercise name", "sets": "3x10", "notes": "optional short note" }
      ],
      "notes": "optional short note"
    }
  ],
  "dietPlan": [
    {
      "day": "Day 1",
      "meals": [
        { "name": "Breakfast", "items": ["item1","item2"], "calories": 450 }
      ],
      "notes": "optional short note"
    }
  ],
  "tips": ["brief tip 1", "brief tip 2"],
  "motivation": "one short motivational paragraph"
}

User details (customize output accordingly):
Name: %s
Age: %s
Gender: %s
Height_cm: %s
Weight_kg: %s
Fitness_Goal: %s
Fitness_Level: %s
Dietary_Preference: %s
Medical_History: %s
Stress_Level: %s

Constraints:
- Output only the JSON object and nothing else.
- Keep strings concise; calories may be estimated integers.
- Aim for up to 7 entries in workoutPlan and dietPlan for a weekly plan.
Generate the JSON now.`

// BuildPrompt renders the profile into the fixed prompt template. Output is
// pure and deterministic for a given profile; unset numeric fields render as
// empty strings and an empty medical history renders as "None".
func BuildPrompt(p profile.UserProfile) string {
	medical := p.Medical
	if medical == "" {
		medical = "None"
	}

	return fmt.Sprintf(promptTemplate,
		p.Name,
		intField(p.Age),
		string(p.Gender),
		floatField(p.HeightCM),
		floatField(p.WeightKG),
		p.Goal,
		string(p.Level),
		string(p.Dietary),
		medical,
		string(p.Stress),
	)
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func floatField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
