package state

import "tableflip.dev/lifetrack/pkg/tracker"

// AddGoal appends a goal with the first-run defaults and returns a copy
// of it.
func (s *Store) AddGoal() (tracker.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := tracker.NewGoal()
	s.goals = append(s.goals, g)
	return g.Clone(), s.persistGoals()
}

// DeleteGoal removes the goal with the given id. Unknown ids are a
// no-op.
func (s *Store) DeleteGoal(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return true, s.persistGoals()
		}
	}
	return false, nil
}

func (s *Store) mutateGoal(id string, fn func(*tracker.Goal)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			fn(&s.goals[i])
			return true, s.persistGoals()
		}
	}
	return false, nil
}

// SetGoalTitle replaces the goal's title.
func (s *Store) SetGoalTitle(id, title string) (bool, error) {
	return s.mutateGoal(id, func(g *tracker.Goal) { g.Title = title })
}

// SetGoalCategory replaces the goal's free-text category.
func (s *Store) SetGoalCategory(id, category string) (bool, error) {
	return s.mutateGoal(id, func(g *tracker.Goal) { g.Category = category })
}

// SetGoalDeadline replaces the goal's ISO deadline string.
func (s *Store) SetGoalDeadline(id, deadline string) (bool, error) {
	return s.mutateGoal(id, func(g *tracker.Goal) { g.Deadline = deadline })
}

// SetGoalStatus moves the goal to the given status.
func (s *Store) SetGoalStatus(id string, status tracker.Status) (bool, error) {
	return s.mutateGoal(id, func(g *tracker.Goal) { g.Status = status })
}

// SetGoalPlanNote records the confirmation message of the last generated
// plan.
func (s *Store) SetGoalPlanNote(id, note string) (bool, error) {
	return s.mutateGoal(id, func(g *tracker.Goal) { g.PlanNote = note })
}

// AddMilestone appends an unchecked milestone to the goal and returns a
// copy of it. Blank text or an unknown goal id is a no-op.
func (s *Store) AddMilestone(goalID, text string) (tracker.Task, bool, error) {
	if text == "" {
		return tracker.Task{}, false, nil
	}
	var t tracker.Task
	changed, err := s.mutateGoal(goalID, func(g *tracker.Goal) {
		t = tracker.NewTask(text)
		g.Milestones = append(g.Milestones, t)
	})
	return t, changed, err
}

// AppendMilestones appends already-built milestone tasks after the
// goal's existing ones, preserving their relative order. Generated plans
// land in the store through here.
func (s *Store) AppendMilestones(goalID string, tasks []tracker.Task) (bool, error) {
	if len(tasks) == 0 {
		return false, nil
	}
	return s.mutateGoal(goalID, func(g *tracker.Goal) {
		g.Milestones = append(g.Milestones, tracker.CloneTasks(tasks)...)
	})
}

// ToggleMilestone flips the done flag of one milestone.
func (s *Store) ToggleMilestone(goalID, taskID string) (bool, error) {
	found := false
	changed, err := s.mutateGoal(goalID, func(g *tracker.Goal) {
		for i := range g.Milestones {
			if g.Milestones[i].ID == taskID {
				g.Milestones[i].Done = !g.Milestones[i].Done
				found = true
				return
			}
		}
	})
	return changed && found, err
}

// DeleteMilestone removes one milestone from one goal by id.
func (s *Store) DeleteMilestone(goalID, taskID string) (bool, error) {
	found := false
	changed, err := s.mutateGoal(goalID, func(g *tracker.Goal) {
		for i := range g.Milestones {
			if g.Milestones[i].ID == taskID {
				g.Milestones = append(g.Milestones[:i], g.Milestones[i+1:]...)
				found = true
				return
			}
		}
	})
	return changed && found, err
}
