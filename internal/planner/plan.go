package planner

// Exercise is a single exercise within a workout day.
type Exercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// WorkoutDay is one day of the workout plan.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes,omitempty"`
}

// Meal is a single meal within a diet day.
type Meal struct {
	Name     string   `json:"name,omitempty"`
	Items    []string `json:"items"`
	Calories int      `json:"calories,omitempty"`
}

// DietDay is one day of the diet plan.
type DietDay struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
	Notes string `json:"notes,omitempty"`
}

// PlanObject is the structured fitness and diet plan the model is asked to
// produce. Absent fields are tolerated and render as empty downstream.
type PlanObject struct {
	Summary     string       `json:"summary"`
	WorkoutPlan []WorkoutDay `json:"workoutPlan"`
	DietPlan    []DietDay    `json:"dietPlan"`
	Tips        []string     `json:"tips"`
	Motivation  string       `json:"motivation"`
}

// Outcome is the result of normalizing model output: exactly one of a
// structured PlanObject or the raw text that failed to parse.
type Outcome struct {
	Object     *PlanObject
	Raw        string
	ParseError string
}

// Structured reports whether the outcome carries a parsed PlanObject.
func (o Outcome) Structured() bool { return o.Object != nil }

// Empty reports whether no plan of either kind is held.
func (o Outcome) Empty() bool { return o.Object == nil && o.Raw == "" }
