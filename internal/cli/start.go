package cli

import (
	"context"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

// StartCmd returns the start command.
func StartCmd() *Command {
	return &Command{
		Usage: "start <id>",
		Short: "Set task status to in-progress",
		Exec:  setStatusExec(task.StatusInProgress),
	}
}

// DoneCmd returns the done command.
func DoneCmd() *Command {
	return &Command{
		Usage: "done <id>",
		Short: "Set task status to done",
		Exec:  setStatusExec(task.StatusDone),
	}
}

// setStatusExec moves a task to status. Any transition is allowed,
// including to the status the task already has.
func setStatusExec(status task.Status) func(context.Context, *IO, *store.Store, []string) error {
	return func(ctx context.Context, o *IO, s *store.Store, args []string) error {
		id, ok := singleID(args)
		if !ok {
			return errUsage
		}

		tasks, err := s.Load()
		if err != nil {
			return err
		}

		t := task.Find(tasks, id)
		if t == nil {
			printNotFound(o, id)

			return nil
		}

		t.Status = status

		err = save(ctx, s, tasks)
		if err != nil {
			return err
		}

		o.Println("Updated: " + task.FormatLine(*t))

		return nil
	}
}

// singleID parses args consisting of exactly one all-digit id.
func singleID(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}

	id, err := task.ParseID(args[0])
	if err != nil {
		return 0, false
	}

	return id, true
}

func printNotFound(o *IO, id int) {
	o.Println("Task not found:", id)
}
