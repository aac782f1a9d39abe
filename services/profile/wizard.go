package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Wizard progress lives in Redis, not the profile document: it is transient
// UI state the listing path never reads.

func wizardKey(id string) string {
	return "wizard:" + id
}

// WizardState returns the saved onboarding progress; a fresh account starts
// at step zero.
func (s *DefaultProfileService) WizardState(ctx context.Context, id string) (WizardState, error) {
	raw, err := s.WizardCache.Get(ctx, wizardKey(id)).Result()
	if err == redis.Nil {
		return WizardState{}, nil
	}
	if err != nil {
		return WizardState{}, fmt.Errorf("failed to load wizard state for %s: %w", id, err)
	}

	var state WizardState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return WizardState{}, fmt.Errorf("failed to decode wizard state for %s: %w", id, err)
	}
	return state, nil
}

// SaveWizardStep records completion of one step. Steps may be revisited but
// not skipped ahead.
func (s *DefaultProfileService) SaveWizardStep(ctx context.Context, id string, step int) (WizardState, error) {
	if step < 0 || step >= len(WizardSteps) {
		return WizardState{}, ErrInvalidWizardStep
	}

	current, err := s.WizardState(ctx, id)
	if err != nil {
		return WizardState{}, err
	}
	if step > current.Step {
		return WizardState{}, ErrInvalidWizardStep
	}

	next := WizardState{Step: step + 1}
	if next.Step >= len(WizardSteps) {
		next = WizardState{Step: len(WizardSteps), Completed: true}
	}
	if next.Step < current.Step || current.Completed {
		next = current // revisiting an earlier step never loses progress
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return WizardState{}, fmt.Errorf("failed to encode wizard state: %w", err)
	}
	if err := s.WizardCache.Set(ctx, wizardKey(id), raw, 0).Err(); err != nil {
		return WizardState{}, fmt.Errorf("failed to save wizard state for %s: %w", id, err)
	}
	return next, nil
}
