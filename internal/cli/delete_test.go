package cli_test

import (
	"testing"

	"github.com/calvinalkan/task-tracker/internal/cli"
	"github.com/calvinalkan/task-tracker/internal/task"

	"github.com/google/go-cmp/cmp"
)

func TestDeleteCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "first")
	c.MustRun("add", "second")
	c.MustRun("add", "third")

	if got, want := c.MustRun("delete", "2"), "Deleted task 2"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	want := []task.Task{
		{ID: 1, Description: "first", Status: task.StatusTodo},
		{ID: 3, Description: "third", Status: task.StatusTodo},
	}
	if diff := cmp.Diff(want, c.ReadTasks()); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}

	before := c.ReadData()

	if got, want := c.MustRun("delete", "2"), "Task not found: 2"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	if c.ReadData() != before {
		t.Error("deleting a missing task must not rewrite the file")
	}
}

func TestDeleteLastTaskLeavesEmptyArray(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "only")
	c.MustRun("delete", "1")

	if got, want := c.ReadData(), "[]\n"; got != want {
		t.Errorf("data=%q, want=%q", got, want)
	}

	if got, want := c.MustRun("list"), "No tasks yet."; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func TestDeleteUsage(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"delete"},
		{"delete", "x1"},
		{"delete", "1", "2"},
		{"delete", "1.0"},
	} {
		c := cli.NewCLI(t)

		if got, want := c.MustRun(args...), "Usage: task-tracker delete <id>"; got != want {
			t.Errorf("%v: stdout=%q, want=%q", args, got, want)
		}
	}
}

func TestDeleteRepeatedIDRemovesFirstOnly(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteData(`[
  {"id": 1, "description": "a", "status": "todo"},
  {"id": 1, "description": "b", "status": "done"},
  {"id": 2, "description": "c", "status": "todo"}
]`)

	if got, want := c.MustRun("delete", "1"), "Deleted task 1"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	want := []task.Task{
		{ID: 1, Description: "b", Status: task.StatusDone},
		{ID: 2, Description: "c", Status: task.StatusTodo},
	}
	if diff := cmp.Diff(want, c.ReadTasks()); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.MustRun("delete", "1"), "Deleted task 1"; got != want {
		t.Errorf("second delete: stdout=%q, want=%q", got, want)
	}

	if got, want := c.MustRun("list"), "[2] todo        c"; got != want {
		t.Errorf("list=%q, want=%q", got, want)
	}
}
