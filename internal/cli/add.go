package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

const (
	msgEmptyDescription = "Task description cannot be empty."
	msgNoIDsLeft        = "Cannot add task: no ids left."
)

// AddCmd returns the add command.
func AddCmd() *Command {
	return &Command{
		Usage: `add "task description"`,
		Short: "Add a task with status todo",
		Exec:  execAdd,
	}
}

func execAdd(ctx context.Context, o *IO, s *store.Store, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	description := task.CleanDescription(args)
	if description == "" {
		o.Println(msgEmptyDescription)

		return nil
	}

	tasks, err := s.Load()
	if err != nil {
		return err
	}

	id, err := task.NextID(tasks)
	if errors.Is(err, task.ErrIDOverflow) {
		o.Println(msgNoIDsLeft)

		return nil
	}

	if err != nil {
		return err
	}

	added := task.Task{
		ID:          id,
		Description: description,
		Status:      task.StatusTodo,
	}

	err = save(ctx, s, append(tasks, added))
	if err != nil {
		return err
	}

	o.Println("Added: " + task.FormatLine(added))

	return nil
}

// save persists tasks unless ctx was cancelled while the command ran.
func save(ctx context.Context, s *store.Store, tasks []task.Task) error {
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("not saved: %w", err)
	}

	return s.Save(tasks)
}
