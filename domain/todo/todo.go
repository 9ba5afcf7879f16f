package todo

import "time"

// Todo represents a task item. It is the aggregate root for its value
// objects; every field-changing operation returns a new snapshot and
// refreshes UpdatedAt, so a Todo held by multiple goroutines is safe to
// share without synchronization.
type Todo struct {
	ID          ID
	Title       Title
	Description Description
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// New creates a Todo with a fresh random ID and defaults: NotStarted status,
// Medium priority, no description, no due date. CreatedAt and UpdatedAt are
// set from a single clock read so the two never skew.
func New(title Title) Todo {
	now := time.Now().UTC()
	return Todo{
		ID:          NewID(),
		Title:       title,
		Description: EmptyDescription(),
		Status:      StatusNotStarted,
		Priority:    PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Complete returns a snapshot with Status set to Completed and CompletedAt
// and UpdatedAt stamped to now. It is unconditional: completing an already
// completed or cancelled todo succeeds and refreshes both timestamps.
func (t Todo) Complete() Todo {
	now := time.Now().UTC()
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
	return t
}

// UpdateTitle returns a snapshot with the title replaced and UpdatedAt
// refreshed. The new title is not required to differ from the old one.
func (t Todo) UpdateTitle(title Title) Todo {
	t.Title = title
	t.UpdatedAt = time.Now().UTC()
	return t
}

// SetPriority returns a snapshot with the priority replaced and UpdatedAt
// refreshed.
func (t Todo) SetPriority(priority Priority) Todo {
	t.Priority = priority
	t.UpdatedAt = time.Now().UTC()
	return t
}
