// Package profile defines the user's physical profile and fitness
// preferences collected at the form boundary.
package profile

import "fmt"

// Gender is the user's self-reported gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Level is the user's current fitness level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Dietary is the user's dietary preference.
type Dietary string

const (
	DietaryVegetarian    Dietary = "vegetarian"
	DietaryNonVegetarian Dietary = "non-vegetarian"
	DietaryVegan         Dietary = "vegan"
	DietaryKeto          Dietary = "keto"
)

// Stress is the user's self-reported stress level.
type Stress string

const (
	StressLow    Stress = "low"
	StressMedium Stress = "medium"
	StressHigh   Stress = "high"
)

// UserProfile is the input collected on form submit. It exists only for the
// duration of a single request and is never persisted.
type UserProfile struct {
	Name     string
	Age      int
	Gender   Gender
	HeightCM float64
	WeightKG float64
	Goal     string
	Level    Level
	Dietary  Dietary
	Medical  string
	Stress   Stress
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func (l Level) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

func (d Dietary) Valid() bool {
	return d == DietaryVegetarian || d == DietaryNonVegetarian || d == DietaryVegan || d == DietaryKeto
}

func (s Stress) Valid() bool {
	return s == StressLow || s == StressMedium || s == StressHigh
}

// Validate enforces the form-boundary rules. The JSON API deliberately does
// not call this; every wire field there is optional.
func (p UserProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if p.Age < 10 {
		return fmt.Errorf("age must be at least 10, got %d", p.Age)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("gender must be one of male, female, other")
	}
	if p.HeightCM < 50 {
		return fmt.Errorf("height must be at least 50 cm, got %g", p.HeightCM)
	}
	if p.WeightKG < 20 {
		return fmt.Errorf("weight must be at least 20 kg, got %g", p.WeightKG)
	}
	if p.Goal == "" {
		return fmt.Errorf("goal must not be empty")
	}
	if !p.Level.Valid() {
		return fmt.Errorf("level must be one of beginner, intermediate, advanced")
	}
	if !p.Dietary.Valid() {
		return fmt.Errorf("dietary must be one of vegetarian, non-vegetarian, vegan, keto")
	}
	if !p.Stress.Valid() {
		return fmt.Errorf("stress must be one of low, medium, high")
	}
	return nil
}
