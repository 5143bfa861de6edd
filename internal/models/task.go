package models

import "time"

// Task is a to-do item. Title and DueDate are nullable columns,
// so both are pointers.
type Task struct {
	ID      int64
	Title   *string
	DueDate *time.Time
}

// TaskWithDone is a listing row: a task joined against its
// completion marker.
type TaskWithDone struct {
	ID      int64
	Title   *string
	DueDate *time.Time
	Done    bool
}
