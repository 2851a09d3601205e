package cli

import (
	"context"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

// ListCmd returns the list command.
func ListCmd() *Command {
	return &Command{
		Usage: "list [todo|in-progress|done]",
		Short: "List tasks sorted by id, optionally by status",
		Exec:  execList,
	}
}

func execList(_ context.Context, o *IO, s *store.Store, args []string) error {
	if len(args) > 1 {
		return errUsage
	}

	filtered := len(args) == 1

	var status task.Status

	if filtered {
		parsed, err := task.ParseStatus(args[0])
		if err != nil {
			o.Println("Unknown status:", strings.ToLower(args[0]))
			o.Println("Valid statuses:", task.ValidStatusList())

			return nil
		}

		status = parsed
	}

	tasks, err := s.Load()
	if err != nil {
		return err
	}

	shown := tasks
	if filtered {
		shown = task.Filter(tasks, status)
	}

	if len(shown) == 0 {
		if filtered {
			o.Printf("No tasks with status '%s'.\n", status)
		} else {
			o.Println("No tasks yet.")
		}

		return nil
	}

	for _, t := range task.SortByID(shown) {
		o.Println(task.FormatLine(t))
	}

	return nil
}
