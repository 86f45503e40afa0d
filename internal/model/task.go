package model

// TaskState is the lifecycle state of a task as supplied by the client.
type TaskState string

const (
	StateInbox    TaskState = "TASK_INBOX"
	StatePinned   TaskState = "TASK_PINNED"
	StateArchived TaskState = "TASK_ARCHIVED"
)

type Task struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	State TaskState `json:"state"`
}

// Pinned reports whether the task is displayed ahead of the others.
func (t Task) Pinned() bool {
	return t.State == StatePinned
}
