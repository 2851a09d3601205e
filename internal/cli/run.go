package cli

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/task-tracker/internal/config"
	"github.com/calvinalkan/task-tracker/internal/logging"
	"github.com/calvinalkan/task-tracker/internal/store"

	flag "github.com/spf13/pflag"
)

const programName = "task-tracker"

// Run is the main entry point. args[0] is the program name. Returns exit code.
//
// Every business outcome, including malformed arguments, exits 0 with a
// message on stdout. A leading token that looks like a flag but is not one is
// an unknown command, not a flag error. Exit code 1 is reserved for a known
// global flag missing its value, invalid configuration, and data file I/O
// failures.
func Run(ctx context.Context, out io.Writer, errOut io.Writer, args []string) int {
	o := NewIO(out, errOut)
	cmds := commands()

	var flags globalFlags

	fs := newGlobalFlagSet(&flags)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	err := fs.Parse(rest)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(out, fs, cmds)

		return 0
	}

	if err != nil {
		token := unknownFlagToken(fs, rest)
		if token == "" {
			o.ErrPrintln("error:", err)
			o.ErrPrintln()
			printUsage(errOut, fs, cmds)

			return 1
		}

		if isHelp(token) {
			printUsage(out, fs, cmds)

			return 0
		}

		return unknownCommand(o, fs, cmds, strings.ToLower(token))
	}

	remaining := fs.Args()

	// pflag swallows a bare "--"; in verb position it is not a command.
	if fs.ArgsLenAtDash() == 0 {
		return unknownCommand(o, fs, cmds, "--")
	}

	if len(remaining) == 0 || isHelp(remaining[0]) {
		printUsage(out, fs, cmds)

		return 0
	}

	verb := strings.ToLower(remaining[0])

	cmd := lookup(cmds, verb)
	if cmd == nil {
		return unknownCommand(o, fs, cmds, verb)
	}

	cfg, err := config.Load(config.Input{
		WorkDirOverride:  flags.workDir,
		ConfigPath:       flags.configPath,
		LogLevelOverride: flags.logLevel,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	level, _ := cfg.Level() // validated by config.Load

	logger, closeLog, err := logging.New(errOut, logging.Options{Level: level, File: cfg.LogFileAbs})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	defer func() { _ = closeLog() }()

	s := store.New(filepath.Join(cfg.WorkDir, store.FileName), logger)

	logger.Debug("dispatch", "command", verb, "args", remaining[1:], "config", cfg.Source)

	return cmd.Run(ctx, o, s, remaining[1:])
}

type globalFlags struct {
	workDir    string
	configPath string
	logLevel   string
}

// newGlobalFlagSet defines the flags accepted before the command verb.
// Parsing stops at the verb so task descriptions may start with "-".
func newGlobalFlagSet(flags *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)

	fs.StringVarP(&flags.workDir, "cwd", "C", "", "Run as if started in `dir`")
	fs.StringVarP(&flags.configPath, "config", "c", "", "Use the specified config `file`")
	fs.StringVar(&flags.logLevel, "log-level", "", "Diagnostics `level` on stderr: debug|info|warn|error")

	return fs
}

func unknownCommand(o *IO, fs *flag.FlagSet, cmds []*Command, verb string) int {
	o.Println("Unknown command:", verb)
	printUsage(o.out, fs, cmds)

	return 0
}

// unknownFlagToken walks args the way fs parses them and returns the first
// dash-prefixed token that names no defined flag. It returns "" when parsing
// reaches a non-flag token, "--", or the end of args first, which means the
// parse error came from a known flag.
func unknownFlagToken(fs *flag.FlagSet, args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			return ""
		}

		var (
			f      *flag.Flag
			inline bool
		)

		if strings.HasPrefix(arg, "--") {
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f = fs.Lookup(name)
			inline = hasValue
		} else {
			f = fs.ShorthandLookup(arg[1:2])
			inline = len(arg) > 2
		}

		if f == nil {
			return arg
		}

		if f.NoOptDefVal == "" && !inline {
			i++ // value is the next token
		}
	}

	return ""
}

func isHelp(arg string) bool {
	switch strings.ToLower(arg) {
	case "help", "-h", "--help":
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet, cmds []*Command) {
	o := NewIO(w, w)

	o.Println(programName + ` - track short tasks in ./` + store.FileName)
	o.Println()
	o.Println("Usage: " + programName + " [options] <command> [args]")
	o.Println()
	o.Println("Options:")
	o.Printf("%s", fs.FlagUsages())
	o.Println()
	o.Println("Commands:")

	for _, c := range cmds {
		o.Println(c.HelpLine())
	}

	o.Printf("  %-31s %s\n", "help", "Show this help")
	o.Println()
	o.Println("Examples:")
	o.Println("  " + programName + ` add "Buy milk"`)
	o.Println("  " + programName + " list")
	o.Println("  " + programName + " list done")
	o.Println("  " + programName + " start 1")
	o.Println("  " + programName + " done 1")
}
