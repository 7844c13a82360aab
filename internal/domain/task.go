package domain

// Task is one entry on the weekly Kanban board.
//
// Tasks are created by hand or derived from the schedule by the
// synchronizer; afterwards they only ever change day, status, title or
// priority, until deleted explicitly.
type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Day      Weekday    `json:"day"`
	Status   TaskStatus `json:"status"`
	Priority Priority   `json:"priority"`
	Origin   TaskOrigin `json:"origin"`

	// OriginActivityKey back-references the schedule activity a derived
	// task came from, as "{slot}_{title}". Nil for manual tasks.
	OriginActivityKey *string `json:"origin_activity_key,omitempty"`

	CreationDate Date `json:"creation_date"`
}

// UpdateTaskParams carries optional field updates for the task store.
// Nil fields are left untouched.
type UpdateTaskParams struct {
	Title    *string
	Day      *Weekday
	Status   *TaskStatus
	Priority *Priority
}
