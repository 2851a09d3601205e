package cli

import (
	"context"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

// DeleteCmd returns the delete command.
func DeleteCmd() *Command {
	return &Command{
		Usage: "delete <id>",
		Short: "Delete a task",
		Exec:  execDelete,
	}
}

func execDelete(ctx context.Context, o *IO, s *store.Store, args []string) error {
	id, ok := singleID(args)
	if !ok {
		return errUsage
	}

	tasks, err := s.Load()
	if err != nil {
		return err
	}

	remaining, removed := task.Remove(tasks, id)
	if !removed {
		printNotFound(o, id)

		return nil
	}

	err = save(ctx, s, remaining)
	if err != nil {
		return err
	}

	o.Println("Deleted task", id)

	return nil
}
