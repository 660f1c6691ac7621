package insight

import (
	"regexp"
	"strings"

	"tableflip.dev/lifetrack/pkg/tracker"
)

// The model is asked for bare lines but tends to number or bullet them
// anyway; strip any leading list markers before keeping a line.
var listMarker = regexp.MustCompile(`^[-*•\d.]+\s*`)

// ParseMilestones splits generated plan text into milestone tasks: one
// unchecked task per non-empty line, leading list markers and
// surrounding whitespace removed, original line order preserved.
func ParseMilestones(text string) []tracker.Task {
	var tasks []tracker.Task
	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if cleaned == "" {
			continue
		}
		tasks = append(tasks, tracker.NewTask(cleaned))
	}
	return tasks
}
