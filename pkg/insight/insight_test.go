package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/lifetrack/pkg/stats"
)

func geminiStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("api key missing from query")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGenerateSuccess(t *testing.T) {
	srv := geminiStub(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"Nice week! Keep going."}]}}]}`)
	defer srv.Close()

	c := &Client{APIKey: "k", BaseURL: srv.URL, HTTPClient: srv.Client()}
	got, ok := c.Generate(context.Background(), "how did I do?")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "Nice week! Keep going." {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateFailuresNeverEscape(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"api error", http.StatusInternalServerError, "boom", FallbackMessage},
		{"malformed body", http.StatusOK, "{not json", FallbackMessage},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, EmptyMessage},
		{"empty text", http.StatusOK,
			`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, EmptyMessage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := geminiStub(t, tc.status, tc.body)
			defer srv.Close()

			c := &Client{APIKey: "k", BaseURL: srv.URL, HTTPClient: srv.Client()}
			got, ok := c.Generate(context.Background(), "p")
			if ok {
				t.Fatal("failure path reported ok")
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerateMissingKey(t *testing.T) {
	c := &Client{}
	got, ok := c.Generate(context.Background(), "p")
	if ok || got != MissingKeyMessage {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestGenerateTransportError(t *testing.T) {
	c := &Client{APIKey: "k", BaseURL: "http://127.0.0.1:1"}
	got, ok := c.Generate(context.Background(), "p")
	if ok || got != FallbackMessage {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestParseMilestones(t *testing.T) {
	tasks := ParseMilestones("1. Buy shoes\n- Run 5k\nRun 10k")
	if len(tasks) != 3 {
		t.Fatalf("parsed %d tasks, want 3", len(tasks))
	}
	want := []string{"Buy shoes", "Run 5k", "Run 10k"}
	for i, text := range want {
		if tasks[i].Text != text {
			t.Fatalf("task %d = %q, want %q", i, tasks[i].Text, text)
		}
		if tasks[i].Done {
			t.Fatalf("task %d should start unchecked", i)
		}
		if tasks[i].ID == "" {
			t.Fatalf("task %d missing id", i)
		}
	}
}

func TestParseMilestonesSkipsNoise(t *testing.T) {
	tasks := ParseMilestones("• First step \n\n   \n2.Second step\n*   Third")
	want := []string{"First step", "Second step", "Third"}
	if len(tasks) != len(want) {
		t.Fatalf("parsed %d tasks, want %d", len(tasks), len(want))
	}
	for i, text := range want {
		if tasks[i].Text != text {
			t.Fatalf("task %d = %q, want %q", i, tasks[i].Text, text)
		}
	}
}

func TestParseMilestonesEmptyInput(t *testing.T) {
	if tasks := ParseMilestones("  \n\n"); len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %v", tasks)
	}
}

func TestCoachPromptEmbedsSummary(t *testing.T) {
	p := CoachPrompt(stats.Summary{
		DaysLogged:         7,
		Habits:             []stats.HabitStat{{Label: "Read", Percent: 50}},
		TotalMinutesWasted: 75,
		TopDistraction:     "Social Media",
		TaskCompletionRate: 66.6667,
	})

	for _, fragment := range []string{
		`"daysLogged":7`,
		`"habits":"Read: 50%"`,
		`"totalTimeWastedMinutes":75`,
		`"topDistraction":"Social Media"`,
		`"taskCompletionRate":"67%"`,
		"productivity coach",
	} {
		if !strings.Contains(p, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, p)
		}
	}
}

func TestPlanPrompt(t *testing.T) {
	p := PlanPrompt("Run a Marathon", "Health")
	if !strings.Contains(p, `"Run a Marathon"`) || !strings.Contains(p, `"Health"`) {
		t.Fatalf("prompt missing goal fields:\n%s", p)
	}
	if !strings.Contains(p, "no numbers or bullets") {
		t.Fatalf("prompt lost its formatting instruction:\n%s", p)
	}
}

func TestInFlightPerGoal(t *testing.T) {
	f := NewInFlight()

	if !f.Begin("g1") {
		t.Fatal("first begin should win")
	}
	if f.Begin("g1") {
		t.Fatal("second begin for same goal should lose")
	}
	// A different goal is tracked independently.
	if !f.Begin("g2") {
		t.Fatal("different goal should begin")
	}
	if !f.Active("g1") || !f.Active("g2") {
		t.Fatal("both goals should be active")
	}

	f.End("g1")
	if f.Active("g1") {
		t.Fatal("g1 should be clear")
	}
	if !f.Begin("g1") {
		t.Fatal("g1 should be startable again")
	}
}
