package models

// Done marks a task as completed. Its ID equals the owning task's ID;
// the row's existence is the completion flag, so it carries nothing else.
type Done struct {
	ID int64
}
