// Package app hosts the full-screen Bubble Tea UI: the daily log, the
// goal grid, and the statistics dashboard as tabs of one program.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	appsvc "tableflip.dev/lifetrack/pkg/app"
	"tableflip.dev/lifetrack/pkg/stats"
	"tableflip.dev/lifetrack/pkg/timeutil"
	"tableflip.dev/lifetrack/pkg/tracker"
)

type tab int

const (
	tabLog tab = iota
	tabGoals
	tabDashboard
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

type insertTarget int

const (
	targetTask insertTarget = iota
	targetMilestone
	targetHabit
)

// entryItem adapts a DailyEntry for the log list.
type entryItem struct {
	e      tracker.DailyEntry
	labels []string
}

func (it entryItem) Title() string {
	score := stats.Score(it.e, it.labels)
	return fmt.Sprintf("%s  %3.0f%%  %d/%d tasks", it.e.Date, score, tracker.CountDone(it.e.Tasks), len(it.e.Tasks))
}

func (it entryItem) Description() string {
	parts := make([]string, 0, len(it.labels))
	for _, label := range it.labels {
		box := "✗"
		if it.e.Habits[label] {
			box = "✓"
		}
		parts = append(parts, fmt.Sprintf("%s %s", box, label))
	}
	if it.e.Distraction != "" {
		parts = append(parts, fmt.Sprintf("lost %dm to %s", it.e.MinsWasted, it.e.Distraction))
	}
	return strings.Join(parts, "  ")
}

func (it entryItem) FilterValue() string { return it.e.Date }

// goalItem adapts a Goal for the goals list.
type goalItem struct {
	g       tracker.Goal
	pending bool
}

func (it goalItem) Title() string {
	title := fmt.Sprintf("%s  [%s]", it.g.Title, it.g.Status)
	if it.pending {
		title += "  … generating"
	}
	return title
}

func (it goalItem) Description() string {
	return fmt.Sprintf("%s · due %s · %d/%d milestones",
		it.g.Category, it.g.Deadline, tracker.CountDone(it.g.Milestones), len(it.g.Milestones))
}

func (it goalItem) FilterValue() string { return it.g.Title }

// Model contains the UI state.
type Model struct {
	svc *appsvc.Service
	ctx context.Context

	tab    tab
	mode   mode
	target insertTarget

	logList  list.Model
	goalList list.Model
	input    textinput.Model

	habitCursor int
	status      string
	insight     string
	insightBusy bool

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
}

// New creates the UI model backed by the Service.
func New(svc *appsvc.Service) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l1 := list.New([]list.Item{}, d, 80, 20)
	l1.Title = "Daily Log"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, d, 80, 20)
	l2.Title = "Active Goals"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		tab:      tabLog,
		logList:  l1,
		goalList: l2,
		input:    ti,
		status:   "NORMAL: tab switch view, j/k move, a add, dd delete, o new task, space toggle habit, ? see README",
	}
	m.reload()
	return m
}

// Init satisfies tea.Model; everything loads synchronously from the
// store.
func (m Model) Init() tea.Cmd {
	return nil
}

// reload rebuilds both lists from fresh store snapshots. Mutations are
// synchronous, so this runs inline after each accepted change.
func (m *Model) reload() {
	labels := m.svc.Store.HabitLabels()

	entries := m.svc.Store.Entries()
	logItems := make([]list.Item, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- { // newest first
		logItems = append(logItems, entryItem{e: entries[i], labels: labels})
	}
	m.logList.SetItems(logItems)

	goals := m.svc.Store.Goals()
	goalItems := make([]list.Item, 0, len(goals))
	for _, g := range goals {
		goalItems = append(goalItems, goalItem{g: g, pending: m.svc.PlanInFlight(g.ID)})
	}
	m.goalList.SetItems(goalItems)

	if m.habitCursor >= len(labels) {
		m.habitCursor = 0
	}
}

// messages
type errMsg struct{ err error }
type planDoneMsg struct {
	goalID string
	res    appsvc.PlanResult
	err    error
}
type insightMsg struct{ text string }

func (m *Model) generatePlan(goalID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.GeneratePlan(m.ctx, goalID)
		return planDoneMsg{goalID: goalID, res: res, err: err}
	}
}

func (m *Model) generateInsight() tea.Cmd {
	return func() tea.Msg {
		return insightMsg{text: m.svc.WeeklyInsight(m.ctx)}
	}
}

func (m *Model) currentEntry() *entryItem {
	sel := m.logList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(entryItem)
	return &it
}

func (m *Model) currentGoal() *goalItem {
	sel := m.goalList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(goalItem)
	return &it
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case planDoneMsg:
		switch {
		case msg.err != nil:
			m.status = "ERR: " + msg.err.Error()
		case msg.res.Failed:
			m.status = msg.res.Message
		default:
			m.status = fmt.Sprintf("%s (%d new milestones)", msg.res.Message, len(msg.res.Added))
		}
		m.reload()
	case insightMsg:
		m.insight = msg.text
		m.insightBusy = false
		m.status = "Analysis updated"
	case tea.KeyPressMsg:
		switch m.mode {
		case modeInsert:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				m.applyInsert(&cmds, input)
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.reload()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			m.handleNormalKey(&cmds, msg.String(), &skipListRouting)
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		switch m.tab {
		case tabLog:
			var cmd tea.Cmd
			m.logList, cmd = m.logList.Update(msg)
			cmds = append(cmds, cmd)
		case tabGoals:
			var cmd tea.Cmd
			m.goalList, cmd = m.goalList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(cmds *[]tea.Cmd, key string, skip *bool) {
	switch key {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		*skip = true
	case "tab":
		m.tab = (m.tab + 1) % 3
		m.status = ""
		*skip = true
	case "j", "down":
		switch m.tab {
		case tabLog:
			m.logList.CursorDown()
		case tabGoals:
			m.goalList.CursorDown()
		}
	case "k", "up":
		switch m.tab {
		case tabLog:
			m.logList.CursorUp()
		case tabGoals:
			m.goalList.CursorUp()
		}
	case "g":
		switch m.tab {
		case tabLog:
			m.logList.Select(0)
		case tabGoals:
			m.goalList.Select(0)
		}
	case "G":
		switch m.tab {
		case tabLog:
			if n := len(m.logList.Items()); n > 0 {
				m.logList.Select(n - 1)
			}
		case tabGoals:
			if n := len(m.goalList.Items()); n > 0 {
				m.goalList.Select(n - 1)
			}
		}

	case "a":
		switch m.tab {
		case tabLog:
			if _, err := m.svc.Store.AddEntry(); err != nil {
				m.fail(cmds, err)
			} else {
				m.status = "Day added"
				m.reload()
				m.logList.Select(0)
			}
		case tabGoals:
			if _, err := m.svc.Store.AddGoal(); err != nil {
				m.fail(cmds, err)
			} else {
				m.status = "Goal added"
				m.reload()
			}
		}

	case "d":
		if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
			m.deleteSelected(cmds)
			m.awaitingDD = false
		} else {
			m.awaitingDD = true
			m.lastDTime = time.Now()
		}

	case "o":
		switch m.tab {
		case tabLog:
			if m.currentEntry() == nil {
				return
			}
			m.enterInsert(cmds, targetTask, "New task")
			*skip = true
		case tabGoals:
			if m.currentGoal() == nil {
				return
			}
			m.enterInsert(cmds, targetMilestone, "New milestone")
			*skip = true
		}

	case "h":
		if m.tab == tabLog {
			m.enterInsert(cmds, targetHabit, "New habit name")
			*skip = true
		}

	case "[", "]":
		if m.tab != tabLog {
			return
		}
		labels := m.svc.Store.HabitLabels()
		if len(labels) == 0 {
			return
		}
		if key == "[" {
			m.habitCursor = (m.habitCursor + len(labels) - 1) % len(labels)
		} else {
			m.habitCursor = (m.habitCursor + 1) % len(labels)
		}
		m.status = "Habit column: " + labels[m.habitCursor]

	case " ", "space":
		if m.tab != tabLog {
			return
		}
		it := m.currentEntry()
		labels := m.svc.Store.HabitLabels()
		if it == nil || m.habitCursor >= len(labels) {
			return
		}
		label := labels[m.habitCursor]
		if _, err := m.svc.Store.SetHabit(it.e.ID, label, !it.e.Habits[label]); err != nil {
			m.fail(cmds, err)
		} else {
			m.reload()
		}

	case "X":
		if m.tab != tabLog {
			return
		}
		labels := m.svc.Store.HabitLabels()
		if m.habitCursor >= len(labels) {
			return
		}
		label := labels[m.habitCursor]
		removed, err := m.svc.Store.RemoveHabitColumn(label)
		if err != nil {
			m.fail(cmds, err)
			return
		}
		if removed {
			m.status = fmt.Sprintf("Removed habit %q", label)
			m.reload()
		} else {
			m.status = fmt.Sprintf("Press X again to delete %q", label)
		}

	case "D":
		if m.tab != tabLog {
			return
		}
		it := m.currentEntry()
		if it == nil {
			return
		}
		next := nextDistraction(it.e.Distraction)
		if _, err := m.svc.Store.SetEntryDistraction(it.e.ID, next); err != nil {
			m.fail(cmds, err)
		} else {
			m.status = "Distraction: " + displayDistraction(next)
			m.reload()
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(key)
		m.toggleNthTask(cmds, idx-1)

	case "s":
		if m.tab != tabGoals {
			return
		}
		it := m.currentGoal()
		if it == nil {
			return
		}
		if _, err := m.svc.Store.SetGoalStatus(it.g.ID, nextStatus(it.g.Status)); err != nil {
			m.fail(cmds, err)
		} else {
			m.reload()
		}

	case "p":
		if m.tab != tabGoals {
			return
		}
		it := m.currentGoal()
		if it == nil {
			return
		}
		if m.svc.PlanInFlight(it.g.ID) {
			m.status = "Already generating a plan for this goal"
			return
		}
		m.status = "Thinking…"
		*cmds = append(*cmds, m.generatePlan(it.g.ID))
		m.reload()

	case "i":
		if m.tab != tabDashboard || m.insightBusy {
			return
		}
		m.insightBusy = true
		m.status = "Analyzing your week…"
		*cmds = append(*cmds, m.generateInsight())

	case "r":
		m.reload()
		m.status = "Refreshed"
	}
}

func (m *Model) enterInsert(cmds *[]tea.Cmd, target insertTarget, placeholder string) {
	m.mode = modeInsert
	m.target = target
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) applyInsert(cmds *[]tea.Cmd, input string) {
	if input == "" {
		m.status = "Cancelled"
		return
	}
	switch m.target {
	case targetTask:
		if it := m.currentEntry(); it != nil {
			if _, _, err := m.svc.Store.AddEntryTask(it.e.ID, input); err != nil {
				m.fail(cmds, err)
				return
			}
			m.status = "Task added"
		}
	case targetMilestone:
		if it := m.currentGoal(); it != nil {
			if _, _, err := m.svc.Store.AddMilestone(it.g.ID, input); err != nil {
				m.fail(cmds, err)
				return
			}
			m.status = "Milestone added"
		}
	case targetHabit:
		added, err := m.svc.Store.AddHabitColumn(input)
		if err != nil {
			m.fail(cmds, err)
			return
		}
		if added {
			m.status = fmt.Sprintf("Tracking %q", input)
		} else {
			m.status = fmt.Sprintf("%q is already tracked", input)
		}
	}
}

func (m *Model) deleteSelected(cmds *[]tea.Cmd) {
	switch m.tab {
	case tabLog:
		if it := m.currentEntry(); it != nil {
			if _, err := m.svc.Store.DeleteEntry(it.e.ID); err != nil {
				m.fail(cmds, err)
				return
			}
			m.status = "Day deleted"
			m.reload()
		}
	case tabGoals:
		if it := m.currentGoal(); it != nil {
			if _, err := m.svc.Store.DeleteGoal(it.g.ID); err != nil {
				m.fail(cmds, err)
				return
			}
			m.status = "Goal deleted"
			m.reload()
		}
	}
}

func (m *Model) toggleNthTask(cmds *[]tea.Cmd, n int) {
	switch m.tab {
	case tabLog:
		it := m.currentEntry()
		if it == nil || n < 0 || n >= len(it.e.Tasks) {
			return
		}
		if _, err := m.svc.Store.ToggleEntryTask(it.e.ID, it.e.Tasks[n].ID); err != nil {
			m.fail(cmds, err)
			return
		}
		m.reload()
	case tabGoals:
		it := m.currentGoal()
		if it == nil || n < 0 || n >= len(it.g.Milestones) {
			return
		}
		if _, err := m.svc.Store.ToggleMilestone(it.g.ID, it.g.Milestones[n].ID); err != nil {
			m.fail(cmds, err)
			return
		}
		m.reload()
	}
}

func (m *Model) fail(cmds *[]tea.Cmd, err error) {
	*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
}

func nextStatus(s tracker.Status) tracker.Status {
	all := tracker.AllStatuses()
	for i, candidate := range all {
		if candidate == s {
			return all[(i+1)%len(all)]
		}
	}
	return tracker.NotStarted
}

func nextDistraction(current string) string {
	for i, candidate := range tracker.Distractions {
		if candidate == current {
			return tracker.Distractions[(i+1)%len(tracker.Distractions)]
		}
	}
	return tracker.Distractions[0]
}

func displayDistraction(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle       = lipgloss.NewStyle().Faint(true)
)

// View renders the active tab with the tab strip above and the status
// line below.
func (m Model) View() string {
	names := []string{"Tracker", "Goals", "Analysis"}
	rendered := make([]string, len(names))
	for i, name := range names {
		if tab(i) == m.tab {
			rendered[i] = tabActiveStyle.Render(name)
		} else {
			rendered[i] = tabInactiveStyle.Render(name)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	var body string
	switch m.tab {
	case tabLog:
		body = m.viewLog()
	case tabGoals:
		body = m.goalList.View()
	case tabDashboard:
		body = m.viewDashboard()
	}

	out := header + "\n\n" + body
	if m.mode == modeInsert {
		out += "\n\nAdd: " + m.input.View()
	}
	return out + "\n\n" + statusStyle.Render(m.status)
}

func (m Model) viewLog() string {
	labels := m.svc.Store.HabitLabels()
	strip := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == m.habitCursor {
			strip = append(strip, headerStyle.Render("["+label+"]"))
		} else {
			strip = append(strip, faintStyle.Render(label))
		}
	}
	columns := "habits: " + strings.Join(strip, "  ")
	if len(labels) == 0 {
		columns = faintStyle.Render("no habits configured; press h to add one")
	}
	return columns + "\n\n" + m.logList.View()
}

func (m Model) viewDashboard() string {
	entries := m.svc.Store.Entries()
	labels := m.svc.Store.HabitLabels()
	summary := stats.Summarize(entries, labels)

	var b strings.Builder

	b.WriteString(headerStyle.Render("Habit Consistency") + "\n")
	if len(summary.Habits) == 0 {
		b.WriteString(faintStyle.Render("no habits configured") + "\n")
	}
	for _, h := range summary.Habits {
		b.WriteString(fmt.Sprintf("%-16s %s %3.0f%%\n", h.Label, gradientBar(h.Percent), h.Percent))
	}

	b.WriteString("\n" + headerStyle.Render("Distraction Impact") + "\n")
	b.WriteString(fmt.Sprintf("Total time lost: %s\n", timeutil.FormatMinutes(summary.TotalMinutesWasted)))
	if top, ok := stats.TopDistraction(entries); ok {
		b.WriteString(fmt.Sprintf("Top offender:    %s (%s)\n", top.Name, timeutil.FormatMinutes(top.Minutes)))
	} else {
		b.WriteString("No distractions logged yet!\n")
	}

	b.WriteString("\n" + headerStyle.Render("Daily Performance") + "\n")
	strip := entries
	if len(strip) > 7 {
		strip = strip[len(strip)-7:]
	}
	for _, e := range strip {
		score := stats.Score(e, labels)
		date := e.Date
		if len(date) >= 10 {
			date = date[5:10]
		}
		b.WriteString(fmt.Sprintf("%s  %s %3.0f%%\n", date, gradientBar(score), score))
	}

	b.WriteString("\n" + headerStyle.Render("Weekly Coach") + "\n")
	switch {
	case m.insightBusy:
		b.WriteString(faintStyle.Render("Analyzing your week…") + "\n")
	case m.insight != "":
		width := m.termWidth - 4
		if width < 20 || width > 100 {
			width = 80
		}
		b.WriteString(wordwrap.String(m.insight, width) + "\n")
	default:
		b.WriteString(faintStyle.Render("Press i for a personalized breakdown of your habits and distractions.") + "\n")
	}

	return b.String()
}

const barWidth = 20

// gradientBar renders a filled bar whose color blends from red toward
// green as the percentage climbs.
func gradientBar(pct float64) string {
	red, _ := colorful.Hex("#f87171")
	green, _ := colorful.Hex("#4ade80")
	hex := red.BlendLuv(green, pct/100).Clamped().Hex()

	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(strings.Repeat("█", filled))
	return bar + faintStyle.Render(strings.Repeat("░", barWidth-filled))
}

// applySizes recalculates list sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth - 2
	h := m.termHeight - 8
	if h < 8 {
		h = 8
	}
	m.logList.SetSize(w, h)
	m.goalList.SetSize(w, h)
}

// Run launches the UI.
func Run(svc *appsvc.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
