package app

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/lifetrack/pkg/insight"
	"tableflip.dev/lifetrack/pkg/state"
	"tableflip.dev/lifetrack/pkg/tracker"
)

// stubGen returns canned text; it can block until released to exercise
// the in-flight guard.
type stubGen struct {
	text    string
	ok      bool
	prompts []string

	mu      sync.Mutex
	release chan struct{}
}

func (g *stubGen) Generate(_ context.Context, prompt string) (string, bool) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	release := g.release
	g.mu.Unlock()
	if release != nil {
		<-release
	}
	return g.text, g.ok
}

func planFixture() *state.Store {
	return state.NewMemory(nil, []tracker.Goal{{
		ID:       "g1",
		Title:    "Run a Marathon",
		Category: "Health",
		Milestones: []tracker.Task{
			{ID: "m0", Text: "Buy Running Shoes"},
		},
	}}, nil)
}

func TestGeneratePlanAppendsParsedMilestones(t *testing.T) {
	st := planFixture()
	gen := &stubGen{text: "1. Buy shoes\n- Run 5k\nRun 10k", ok: true}
	svc := New(st, gen)

	res, err := svc.GeneratePlan(context.Background(), "g1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Failed || len(res.Added) != 3 || res.Message != PlanNote {
		t.Fatalf("result = %+v", res)
	}

	g, _ := st.Goal("g1")
	want := []string{"Buy Running Shoes", "Buy shoes", "Run 5k", "Run 10k"}
	if len(g.Milestones) != len(want) {
		t.Fatalf("milestones = %v", g.Milestones)
	}
	for i, text := range want {
		if g.Milestones[i].Text != text {
			t.Fatalf("milestone %d = %q, want %q", i, g.Milestones[i].Text, text)
		}
	}
	if g.PlanNote != PlanNote {
		t.Fatalf("plan note = %q", g.PlanNote)
	}

	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], `"Run a Marathon"`) {
		t.Fatalf("prompt = %v", gen.prompts)
	}
}

func TestGeneratePlanFailureLeavesGoalAlone(t *testing.T) {
	st := planFixture()
	gen := &stubGen{text: insight.FallbackMessage, ok: false}
	svc := New(st, gen)

	res, err := svc.GeneratePlan(context.Background(), "g1")
	if err != nil {
		t.Fatalf("a failed generation is not an error: %v", err)
	}
	if !res.Failed || res.Message != insight.FallbackMessage {
		t.Fatalf("result = %+v", res)
	}

	g, _ := st.Goal("g1")
	if len(g.Milestones) != 1 || g.PlanNote != "" {
		t.Fatalf("failed generation mutated the goal: %+v", g)
	}
}

func TestGeneratePlanUnknownGoal(t *testing.T) {
	svc := New(planFixture(), &stubGen{ok: true, text: "x"})
	if _, err := svc.GeneratePlan(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown goal")
	}
}

func TestGeneratePlanUntitledGoal(t *testing.T) {
	st := state.NewMemory(nil, []tracker.Goal{{ID: "g2"}}, nil)
	svc := New(st, &stubGen{ok: true, text: "x"})
	if _, err := svc.GeneratePlan(context.Background(), "g2"); err == nil {
		t.Fatal("expected error for untitled goal")
	}
}

func TestGeneratePlanInFlightPerGoal(t *testing.T) {
	st := state.NewMemory(nil, []tracker.Goal{
		{ID: "g1", Title: "A"},
		{ID: "g2", Title: "B"},
	}, nil)
	gen := &stubGen{text: "Step one", ok: true, release: make(chan struct{})}
	svc := New(st, gen)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := svc.GeneratePlan(context.Background(), "g1")
		done <- err
	}()
	<-started
	deadline := time.Now().Add(2 * time.Second)
	for !svc.PlanInFlight("g1") {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for generation to start")
		}
		runtime.Gosched()
	}

	// Same goal: rejected while running.
	if _, err := svc.GeneratePlan(context.Background(), "g1"); !errors.Is(err, ErrPlanInFlight) {
		t.Fatalf("expected ErrPlanInFlight, got %v", err)
	}
	// Different goal: tracked independently.
	if svc.PlanInFlight("g2") {
		t.Fatal("g2 should not be in flight")
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	if svc.PlanInFlight("g1") {
		t.Fatal("in-flight mark should clear when the request finishes")
	}
}

func TestWeeklyInsightReturnsTextVerbatim(t *testing.T) {
	st := state.NewMemory([]tracker.DailyEntry{
		{ID: "d1", Habits: map[string]bool{"Read": true}, Distraction: "YouTube", MinsWasted: 20},
	}, nil, []string{"Read"})
	gen := &stubGen{text: "Solid week. �review", ok: true}
	svc := New(st, gen)

	got := svc.WeeklyInsight(context.Background())
	if got != "Solid week. �review" {
		t.Fatalf("got %q", got)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], `"topDistraction":"YouTube"`) {
		t.Fatalf("prompt = %v", gen.prompts)
	}
}
