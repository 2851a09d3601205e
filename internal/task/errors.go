package task

import "errors"

// Status constants.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Error variables for task operations.
var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrInvalidID     = errors.New("invalid task id")
	ErrIDOverflow    = errors.New("no task ids left")
)
