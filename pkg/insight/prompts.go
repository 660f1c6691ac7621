package insight

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"tableflip.dev/lifetrack/pkg/stats"
)

// PlanPrompt asks for 3-5 plain milestone lines for one goal.
func PlanPrompt(title, category string) string {
	return fmt.Sprintf(
		`I have a goal: %q in the category %q. Please break this down into 3-5 concrete, actionable milestones. Return ONLY the steps separated by newlines, no numbers or bullets.`,
		title, category)
}

// coachData is the JSON blob embedded in the weekly coaching prompt.
// Field names match what the coach prompt has always sent.
type coachData struct {
	DaysLogged             int    `json:"daysLogged"`
	Habits                 string `json:"habits"`
	TotalTimeWastedMinutes int    `json:"totalTimeWastedMinutes"`
	TopDistraction         string `json:"topDistraction"`
	TaskCompletionRate     string `json:"taskCompletionRate"`
}

// CoachPrompt renders the aggregate summary into the weekly coaching
// prompt.
func CoachPrompt(s stats.Summary) string {
	habitBits := make([]string, 0, len(s.Habits))
	for _, h := range s.Habits {
		habitBits = append(habitBits, fmt.Sprintf("%s: %d%%", h.Label, int(math.Round(h.Percent))))
	}

	data := coachData{
		DaysLogged:             s.DaysLogged,
		Habits:                 strings.Join(habitBits, ", "),
		TotalTimeWastedMinutes: s.TotalMinutesWasted,
		TopDistraction:         s.TopDistraction,
		TaskCompletionRate:     fmt.Sprintf("%d%%", int(math.Round(s.TaskCompletionRate))),
	}
	blob, err := json.Marshal(data)
	if err != nil {
		blob = []byte("{}")
	}

	return fmt.Sprintf(
		`You are a tough but encouraging productivity coach. Here is my data for the last week: %s. Please give me a short, 3-sentence summary of my performance. Point out the good and the bad. Then, provide ONE specific, actionable tip to improve next week. Use emojis.`,
		blob)
}
