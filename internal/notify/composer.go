package notify

import (
	"context"
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Fixed digest texts. The composer never returns an error to its caller;
// these stand in for the summary when there is nothing to say or when the
// store is unreachable.
const (
	noProjectsText = "📭 No projects on the board yet."
	allDoneText    = "✅ All tasks are done. Enjoy the day!"
	loadErrorText  = "⚠️ Could not load the task summary. Please check the planner."
)

const (
	markerInProgress = "🔄"
	markerTodo       = "⬜"
	markerHigh       = "🔴"
	markerNormal     = "🟡"
	markerLow        = "🟢"
)

// Composer builds the text digest of active and overdue tasks grouped by
// project. It only reads from the store; day-boundary math is anchored to
// the configured notification timezone.
type Composer struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	loc      *time.Location
	logger   *zap.Logger

	now func() time.Time
}

func NewComposer(projects repository.ProjectRepository, tasks repository.TaskRepository, loc *time.Location, logger *zap.Logger) *Composer {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{
		projects: projects,
		tasks:    tasks,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// TaskSummary renders the base digest: per-project sections of in-progress
// and todo tasks followed by an overview block.
func (c *Composer) TaskSummary(ctx context.Context) string {
	projects, tasksByProject, ok := c.load(ctx)
	if !ok {
		return loadErrorText
	}
	return c.render(projects, tasksByProject)
}

func (c *Composer) render(projects []domain.Project, tasksByProject map[string][]domain.Task) string {
	if len(projects) == 0 {
		return noProjectsText
	}

	today := dayStart(c.now().In(c.loc))

	var b strings.Builder
	var totalOpen, totalOverdue int

	for _, project := range projects {
		open := openTasks(tasksByProject[project.ID])
		if len(open) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("📌 <b>%s</b>\n", html.EscapeString(project.Title)))

		for _, task := range open {
			if task.Status != domain.StatusInProgress {
				continue
			}
			c.writeTaskLine(&b, task, today)
		}
		for _, task := range open {
			if task.Status != domain.StatusTodo {
				continue
			}
			c.writeTaskLine(&b, task, today)
		}

		totalOpen += len(open)
		for _, task := range open {
			if isOverdue(task, today, c.loc) {
				totalOverdue++
			}
		}
	}

	if totalOpen == 0 {
		return allDoneText
	}

	b.WriteString(fmt.Sprintf("\n📊 Open tasks: %d\n", totalOpen))
	if totalOverdue > 0 {
		b.WriteString(fmt.Sprintf("⏰ Overdue: %d\n", totalOverdue))
	}

	return strings.TrimRight(b.String(), "\n")
}

// TimeSpecificSummary returns the base digest, with a "planned for tomorrow"
// section appended for the evening variant when that list is non-empty. The
// digest and the planned section are built from one store snapshot so the
// two never disagree.
func (c *Composer) TimeSpecificSummary(ctx context.Context, tod TimeOfDay) string {
	projects, tasksByProject, ok := c.load(ctx)
	if !ok {
		return loadErrorText
	}

	summary := c.render(projects, tasksByProject)
	if tod != Evening {
		return summary
	}

	tomorrow := dayStart(c.now().In(c.loc)).AddDate(0, 0, 1)

	var planned []string
	for _, tasks := range tasksByProject {
		for _, task := range tasks {
			if task.IsDone() || task.DueDate == nil {
				continue
			}
			if dayStart(task.DueDate.In(c.loc)).Equal(tomorrow) {
				planned = append(planned, task.Title)
			}
		}
	}
	if len(planned) == 0 {
		return summary
	}

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n🗓 <b>Planned for tomorrow</b>\n")
	for _, title := range planned {
		b.WriteString(fmt.Sprintf("• %s\n", html.EscapeString(title)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// load pulls every project and task; the digest must count all open work,
// so the unpaginated listing form is used.
func (c *Composer) load(ctx context.Context) ([]domain.Project, map[string][]domain.Task, bool) {
	projects, err := c.projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		c.logger.Error("summary: loading projects failed", zap.Error(err))
		return nil, nil, false
	}

	tasks, err := c.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		c.logger.Error("summary: loading tasks failed", zap.Error(err))
		return nil, nil, false
	}

	byProject := make(map[string][]domain.Task, len(projects))
	for _, task := range tasks {
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}
	return projects, byProject, true
}

func (c *Composer) writeTaskLine(b *strings.Builder, task domain.Task, today time.Time) {
	marker := markerInProgress
	if task.Status == domain.StatusTodo {
		marker = markerTodo
	}
	b.WriteString(fmt.Sprintf("  %s %s", marker, html.EscapeString(task.Title)))

	// Priority is surfaced only for tasks that have not been started.
	if task.Status == domain.StatusTodo {
		if m := priorityMarker(task.Priority); m != "" {
			b.WriteString(" " + m)
		}
	}

	if task.DueDate != nil {
		b.WriteString(" " + dueAnnotation(*task.DueDate, today, c.loc))
	}
	b.WriteByte('\n')
}

func priorityMarker(p int) string {
	switch p {
	case domain.PriorityHigh:
		return markerHigh
	case domain.PriorityNormal:
		return markerNormal
	case domain.PriorityLow:
		return markerLow
	}
	return ""
}

// dueAnnotation compares dates at day granularity in the given location.
func dueAnnotation(due, today time.Time, loc *time.Location) string {
	d := dayStart(due.In(loc))
	// Rounding keeps the count correct across DST transitions, where a
	// calendar day is not exactly 24 hours long.
	days := int(math.Round(d.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "(today)"
	case days == 1:
		return "(tomorrow)"
	case days < 0:
		overdue := -days
		if overdue == 1 {
			return "(1 day overdue)"
		}
		return fmt.Sprintf("(%d days overdue)", overdue)
	default:
		return "(" + d.Format("Jan 2") + ")"
	}
}

func isOverdue(task domain.Task, today time.Time, loc *time.Location) bool {
	if task.IsDone() || task.DueDate == nil {
		return false
	}
	return dayStart(task.DueDate.In(loc)).Before(today)
}

func openTasks(tasks []domain.Task) []domain.Task {
	var open []domain.Task
	for _, task := range tasks {
		if !task.IsDone() {
			open = append(open, task)
		}
	}
	return open
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
