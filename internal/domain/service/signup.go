package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/notification"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
)

type signupService struct {
	store    *roster.Store
	composer notification.Composer
	phase    func() domain.Phase
}

func newSignup(store *roster.Store, composer notification.Composer, phase func() domain.Phase) *signupService {
	return &signupService{
		store:    store,
		composer: composer,
		phase:    phase,
	}
}

// Handle applies a user action to the roster and renders the result for the
// acting user. Invalid days are the only user error returned as an error.
func (s *signupService) Handle(ctx context.Context, action entity.UserAction) (*entity.ActionResult, error) {
	if strings.TrimSpace(action.UserID) == "" {
		return nil, fmt.Errorf("user id is required")
	}

	displayName := strings.TrimSpace(action.DisplayName)
	if displayName == "" {
		displayName = action.UserID
	}

	var outcome entity.Outcome
	switch action.Intent.Kind {
	case entity.IntentClaim:
		day, err := s.store.ParseDay(action.Intent.Day)
		if err != nil {
			return nil, err
		}
		outcome, err = s.store.Claim(action.UserID, displayName, day)
		if err != nil {
			return nil, err
		}
	case entity.IntentCancel:
		outcome = s.store.Cancel(action.UserID)
	case entity.IntentSnapshot:
		outcome = entity.Outcome{Kind: entity.OutcomeShown}
	default:
		return nil, fmt.Errorf("unknown intent %q", action.Intent.Kind)
	}

	if outcome.Mutated() {
		log.Printf("Roster change by %s: %s %s", action.UserID, outcome.Kind, describe(outcome))
	}

	return &entity.ActionResult{
		Outcome: outcome,
		Message: s.composer.OutcomeMessage(outcome),
		Payload: s.OpenPrompt(),
	}, nil
}

// OpenPrompt renders the signup prompt on demand without touching the schedule.
func (s *signupService) OpenPrompt() entity.Payload {
	return s.composer.OpenPrompt(s.store.Snapshot())
}

func (s *signupService) Snapshot() entity.Snapshot {
	return s.store.Snapshot()
}

func (s *signupService) Days() []domain.Day {
	return s.store.Days()
}

func (s *signupService) Phase() domain.Phase {
	return s.phase()
}

func describe(outcome entity.Outcome) string {
	if outcome.From != "" && outcome.Day != "" {
		return fmt.Sprintf("%s -> %s", outcome.From, outcome.Day)
	}
	if outcome.From != "" {
		return string(outcome.From)
	}
	return string(outcome.Day)
}
