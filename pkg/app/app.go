// Package app provides the high-level operations shared by the CLI
// runners and the full-screen UI: plan generation for a goal and the
// weekly coaching summary, layered over the state store and the insight
// collaborator.
package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/insight"
	"tableflip.dev/lifetrack/pkg/state"
	"tableflip.dev/lifetrack/pkg/stats"
	"tableflip.dev/lifetrack/pkg/tracker"
)

// PlanNote is stored on a goal after a generated plan lands in its
// milestone list.
const PlanNote = "Plan added to checklist!"

// ErrPlanInFlight reports that a generation request for the same goal is
// already running.
var ErrPlanInFlight = errors.New("app: plan generation already in flight for this goal")

// Service wires the store to the text-generation collaborator.
type Service struct {
	Store    *state.Store
	Gen      insight.Generator
	inflight *insight.InFlight
}

// New builds a Service. A nil generator falls back to the configured
// Gemini client.
func New(store *state.Store, gen insight.Generator) *Service {
	if gen == nil {
		gen = insight.NewClient()
	}
	return &Service{Store: store, Gen: gen, inflight: insight.NewInFlight()}
}

// PlanResult reports what a generation request did.
type PlanResult struct {
	Added []tracker.Task
	// Message is the plan confirmation or, when Failed, the fixed
	// failure text from the collaborator.
	Message string
	Failed  bool
}

// GeneratePlan asks the collaborator to break the goal into milestones
// and appends the parsed result to the goal. A failed generation leaves
// the milestone list alone and reports the failure text; it is not an
// error. Only one request per goal id runs at a time.
func (s *Service) GeneratePlan(ctx context.Context, goalID string) (PlanResult, error) {
	goal, ok := s.Store.Goal(goalID)
	if !ok {
		return PlanResult{}, fmt.Errorf("app: no goal with id %q", goalID)
	}
	if goal.Title == "" {
		return PlanResult{}, errors.New("app: goal has no title to plan against")
	}
	if !s.inflight.Begin(goalID) {
		return PlanResult{}, ErrPlanInFlight
	}
	defer s.inflight.End(goalID)

	text, generated := s.Gen.Generate(ctx, insight.PlanPrompt(goal.Title, goal.Category))
	if !generated {
		return PlanResult{Message: text, Failed: true}, nil
	}

	tasks := insight.ParseMilestones(text)
	if len(tasks) == 0 {
		return PlanResult{Message: insight.EmptyMessage, Failed: true}, nil
	}

	if _, err := s.Store.AppendMilestones(goalID, tasks); err != nil {
		return PlanResult{}, err
	}
	if _, err := s.Store.SetGoalPlanNote(goalID, PlanNote); err != nil {
		return PlanResult{}, err
	}
	return PlanResult{Added: tasks, Message: PlanNote}, nil
}

// PlanInFlight reports whether a generation request for the goal is
// currently running.
func (s *Service) PlanInFlight(goalID string) bool {
	return s.inflight.Active(goalID)
}

// WeeklyInsight summarizes the current log and asks the collaborator for
// a coaching paragraph. The returned text is displayed verbatim, failure
// messages included.
func (s *Service) WeeklyInsight(ctx context.Context) string {
	summary := stats.Summarize(s.Store.Entries(), s.Store.HabitLabels())
	text, _ := s.Gen.Generate(ctx, insight.CoachPrompt(summary))
	return text
}
