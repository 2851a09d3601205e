package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/store"
)

// errUsage is returned by Exec when the arguments have the wrong shape.
// Command.Run turns it into the command's usage line.
var errUsage = errors.New("usage")

// Command defines a CLI verb with unified help generation.
type Command struct {
	// Usage is the freeform usage string shown after the program name.
	// Includes the command name and its arguments.
	// Examples: "start <id>", `add "task description"`
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Exec runs the command against the store. Business outcomes such as
	// "not found" are printed and return nil; only infrastructure failures
	// are returned as errors.
	Exec func(ctx context.Context, o *IO, s *store.Store, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-31s %s", c.Usage, c.Short)
}

// UsageLine returns the line printed when the arguments are malformed.
func (c *Command) UsageLine() string {
	return "Usage: " + programName + " " + c.Usage
}

// Run executes the command. Returns exit code.
func (c *Command) Run(ctx context.Context, o *IO, s *store.Store, args []string) int {
	err := c.Exec(ctx, o, s, args)
	if errors.Is(err, errUsage) {
		o.Println(c.UsageLine())
		return 0
	}

	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	return 0
}

func commands() []*Command {
	return []*Command{
		AddCmd(),
		ListCmd(),
		StartCmd(),
		DoneCmd(),
		DeleteCmd(),
		UpdateCmd(),
	}
}

func lookup(cmds []*Command, name string) *Command {
	for _, c := range cmds {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
