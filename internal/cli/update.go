package cli

import (
	"context"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

// UpdateCmd returns the update command.
func UpdateCmd() *Command {
	return &Command{
		Usage: `update <id> "new description"`,
		Short: "Replace a task description",
		Exec:  execUpdate,
	}
}

func execUpdate(ctx context.Context, o *IO, s *store.Store, args []string) error {
	if len(args) < 2 {
		return errUsage
	}

	id, err := task.ParseID(args[0])
	if err != nil {
		return errUsage
	}

	description := task.CleanDescription(args[1:])
	if description == "" {
		o.Println(msgEmptyDescription)

		return nil
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

	t.Description = description

	err = save(ctx, s, tasks)
	if err != nil {
		return err
	}

	o.Println("Updated: " + task.FormatLine(*t))

	return nil
}
