package planner

import "encoding/json"

// Normalize attempts a strict JSON parse of the model's text. On success the
// parsed value becomes the plan; on failure the raw text is kept alongside a
// parse error description. It never fails past this boundary and there is no
// secondary JSON-repair pass.
func Normalize(text string) Outcome {
	var plan PlanObject
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return Outcome{Raw: text, ParseError: err.Error()}
	}
	return Outcome{Object: &plan}
}
