// Package planner turns a user profile into a fitness and diet plan by
// prompting a generative model and normalizing whatever comes back.
package planner

import (
	"context"

	"ai-fitness-planner/internal/llm"
	"ai-fitness-planner/internal/profile"
)

// Planner handles the generation of fitness plans.
type Planner struct {
	gateway *llm.Gateway
}

// NewPlanner creates a new Planner instance.
func NewPlanner(gateway *llm.Gateway) *Planner {
	return &Planner{gateway: gateway}
}

// GeneratePlan builds the prompt, calls the model once through the gateway,
// and normalizes the response. Gateway errors propagate untouched; a parse
// failure is not an error and degrades to a raw-text outcome instead.
func (p *Planner) GeneratePlan(ctx context.Context, prof profile.UserProfile) (Outcome, error) {
	prompt := BuildPrompt(prof)

	text, err := p.gateway.Generate(ctx, prompt)
	if err != nil {
		return Outcome{}, err
	}

	return Normalize(text), nil
}
