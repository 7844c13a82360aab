package domain

// TaskStatus represents the Kanban column a task sits in.
// Value object - immutable string enum.
type TaskStatus string

const (
	StatusTodo  TaskStatus = "todo"
	StatusDoing TaskStatus = "doing"
	StatusDone  TaskStatus = "done"
)

// TaskOrigin tells whether a task was entered by hand or derived from the
// weekly schedule by the synchronizer.
type TaskOrigin string

const (
	OriginManual   TaskOrigin = "manual"
	OriginSchedule TaskOrigin = "schedule"
)

// Priority is the urgency of a task or activity: 0 is the most urgent,
// 3 the least and the default.
type Priority int

const (
	PriorityCritical Priority = 0
	PriorityHigh     Priority = 1
	PriorityMedium   Priority = 2
	PriorityLow      Priority = 3

	DefaultPriority = PriorityLow
)

// priorityLabels and priorityColors carry the presentation metadata each
// priority level renders with on the board.
var (
	priorityLabels = [4]string{"Critical", "High", "Medium", "Low"}
	priorityColors = [4]string{"#e74c3c", "#e67e22", "#f1c40f", "#3498db"}
)

// Label returns the display name of the priority ("Critical".."Low").
func (p Priority) Label() string {
	if p < PriorityCritical || p > PriorityLow {
		return ""
	}
	return priorityLabels[p]
}

// Color returns the hex color associated with the priority.
func (p Priority) Color() string {
	if p < PriorityCritical || p > PriorityLow {
		return ""
	}
	return priorityColors[p]
}

// Recurrence is the repetition rule of a scheduled activity. The values
// are the literal tokens of the bracket grammar and must stay lowercase.
type Recurrence string

const (
	RecurrenceOnce     Recurrence = "unica"
	RecurrenceDaily    Recurrence = "diaria"
	RecurrenceWeekly   Recurrence = "semanal"
	RecurrenceBiweekly Recurrence = "quinzenal"
	RecurrenceMonthly  Recurrence = "mensal"

	DefaultRecurrence = RecurrenceWeekly
)
