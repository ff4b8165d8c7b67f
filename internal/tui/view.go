package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fittrack/fittrack/internal/usecase"
)

// View renders the dashboard.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	switch m.tab {
	case TabTasks:
		b.WriteString(m.viewTasks())
	case TabMatrix:
		b.WriteString(m.viewMatrix())
	case TabTags:
		b.WriteString(m.viewTags())
	case TabCalendar:
		b.WriteString(m.viewCalendar())
	case TabMeals:
		b.WriteString(m.viewMeals())
	case TabWorkouts:
		b.WriteString(m.viewWorkouts())
	case TabStats:
		b.WriteString(m.viewStats())
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return m.styles.App.Render(b.String())
}

func (m *Model) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewTasks() string {
	if m.occurrences == nil || len(m.occurrences.Items) == 0 {
		return m.styles.Muted.Render("No tasks. Add one with: fittrack task add <title>")
	}

	var b strings.Builder
	for i, item := range m.occurrences.Items {
		line := m.renderOccurrence(item)
		if i == m.cursor {
			b.WriteString(m.styles.ItemSel.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderOccurrence(item usecase.OccurrenceItem) string {
	mark := "[ ]"
	if item.Occurrence.Completed {
		mark = "[x]"
	}
	state := m.styles.StateStyle(item.Occurrence.State).Render(item.Occurrence.State.Display())
	line := fmt.Sprintf("%s #%-3d %-30s %s  %s",
		mark, item.Task.ID, truncate(item.Task.Title, 30),
		item.Occurrence.DueAt.Format("Jan 02 15:04"), state)
	if item.Repeat.IsRepeating() {
		line += m.styles.Muted.Render("  ↻ " + item.Repeat.String())
	}
	if len(item.Tags) > 0 {
		line += m.styles.Muted.Render("  " + strings.Join(item.Tags, ","))
	}
	return line
}

func (m *Model) viewMatrix() string {
	if m.matrix == nil {
		return m.styles.Muted.Render("Loading...")
	}

	var b strings.Builder
	for _, cell := range m.matrix.Cells {
		b.WriteString(m.styles.SectionHead.Render(cell.Quadrant.Display()) + "\n")
		m.writeItems(&b, cell.Items)
	}
	if len(m.matrix.Unassigned) > 0 {
		b.WriteString(m.styles.SectionHead.Render("Unassigned") + "\n")
		m.writeItems(&b, m.matrix.Unassigned)
	}
	return b.String()
}

func (m *Model) viewTags() string {
	if m.tags == nil || len(m.tags.Groups) == 0 {
		return m.styles.Muted.Render("No tasks.")
	}

	var b strings.Builder
	for _, group := range m.tags.Groups {
		b.WriteString(m.styles.SectionHead.Render(group.Tag) + "\n")
		m.writeItems(&b, group.Items)
	}
	return b.String()
}

func (m *Model) writeItems(b *strings.Builder, items []usecase.OccurrenceItem) {
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("  (none)") + "\n")
		return
	}
	for _, item := range items {
		state := m.styles.StateStyle(item.Occurrence.State).Render(item.Occurrence.State.Display())
		b.WriteString(fmt.Sprintf("  #%-3d %-30s %s\n", item.Task.ID, truncate(item.Task.Title, 30), state))
	}
}

func (m *Model) viewCalendar() string {
	if m.calendar == nil {
		return m.styles.Muted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(m.styles.SectionHead.Render(fmt.Sprintf("%s %d", m.calendar.Month, m.calendar.Year)) + "\n")
	empty := true
	for _, day := range m.calendar.Days {
		if len(day.Items) == 0 {
			continue
		}
		empty = false
		b.WriteString(m.styles.Item.Render(string(day.Key)) + "\n")
		m.writeItems(&b, day.Items)
	}
	if empty {
		b.WriteString(m.styles.Muted.Render("No occurrences this month.") + "\n")
	}
	return b.String()
}

func (m *Model) viewMeals() string {
	if m.meals == nil || len(m.meals.Meals) == 0 {
		return m.styles.Muted.Render("No meals logged today.")
	}

	var b strings.Builder
	for _, meal := range m.meals.Meals {
		b.WriteString(fmt.Sprintf("  %-9s %-28s %4d kcal  P%d C%d F%d\n",
			meal.Type, truncate(meal.Name, 28), meal.Calories, meal.Protein, meal.Carbs, meal.Fats))
	}
	t := m.meals.Totals
	b.WriteString(m.styles.SectionHead.Render(
		fmt.Sprintf("  Total: %d kcal (P%d C%d F%d)", t.Calories, t.Protein, t.Carbs, t.Fats)) + "\n")
	return b.String()
}

func (m *Model) viewWorkouts() string {
	if m.workouts == nil || len(m.workouts.Workouts) == 0 {
		return m.styles.Muted.Render("No workouts logged today.")
	}

	var b strings.Builder
	for _, w := range m.workouts.Workouts {
		b.WriteString(fmt.Sprintf("  %-9s %-28s %3d min  %4d kcal\n",
			w.Type, truncate(w.Name, 28), w.Duration, w.CaloriesBurned))
		for _, ex := range w.Exercises {
			if ex.Weight > 0 {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("    %s %dx%d @%dkg", ex.Name, ex.Sets, ex.Reps, ex.Weight)) + "\n")
			} else {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("    %s %dx%d", ex.Name, ex.Sets, ex.Reps)) + "\n")
			}
		}
	}
	t := m.workouts.Totals
	b.WriteString(m.styles.SectionHead.Render(
		fmt.Sprintf("  Total: %d min, %d kcal", t.Duration, t.CaloriesBurned)) + "\n")
	return b.String()
}

func (m *Model) viewStats() string {
	if m.summary == nil || m.weekly == nil {
		return m.styles.Muted.Render("Loading...")
	}

	var b strings.Builder
	s := m.summary
	b.WriteString(m.styles.SectionHead.Render("Today ("+string(s.Date)+")") + "\n")
	b.WriteString(fmt.Sprintf("  Tasks:    %d due, %d completed, %d overdue\n", s.TasksDue, s.TasksCompleted, s.TasksOverdue))
	b.WriteString(fmt.Sprintf("  Intake:   %d kcal (P%d C%d F%d)\n", s.Nutrition.Calories, s.Nutrition.Protein, s.Nutrition.Carbs, s.Nutrition.Fats))
	b.WriteString(fmt.Sprintf("  Training: %d min, %d kcal burned\n\n", s.Workouts.Duration, s.Workouts.CaloriesBurned))

	b.WriteString(m.styles.SectionHead.Render("Trailing week") + "\n")
	for _, day := range m.weekly.Days {
		b.WriteString(fmt.Sprintf("  %s  done:%-2d  train:%3dm  in:%4d  out:%4d\n",
			day.Date, day.TasksCompleted, day.WorkoutMinutes, day.CaloriesConsumed, day.CaloriesBurned))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
