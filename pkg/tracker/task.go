package tracker

// Task is a single checklist item. It is owned by exactly one DailyEntry
// task list or one Goal milestone list and never shared between parents.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NewTask creates an unchecked task with a fresh id.
func NewTask(text string) Task {
	return Task{ID: NewID(), Text: text}
}

// CountDone returns how many tasks in the list are checked off.
func CountDone(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// CloneTasks returns an independent copy of a task list.
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
