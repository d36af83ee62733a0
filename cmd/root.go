// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/listdir"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	streams Streams
	printer *ui.Printer
	logger  *log.Logger
}

// Run executes the tasklist CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	return RunWithStreams(ctx, args, StdStreams())
}

// RunWithStreams executes the tasklist CLI with explicit streams.
func RunWithStreams(ctx context.Context, args []string, streams Streams) error {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	a := &app{
		cfg:     cws.Config,
		sources: cws,
		streams: streams,
		printer: ui.NewPrinter(streams.Out, streams.Err, cws.Config.Color, cws.Config.DateFormat),
		logger:  logging.FromConfig(streams.Err, cws.Config),
	}
	for _, w := range a.cfg.Warnings {
		a.logger.Warn(w)
	}
	a.logger.Debug("configuration loaded", "files", strings.Join(cws.Files, ","), "file_name", a.cfg.FileName)

	// Without a subcommand the list is shown.
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	err = a.dispatch(ctx, fs, subcommand, remainingArgs)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return &CommandError{Err: err, Color: a.cfg.Color}
}

// CommandError is a failed command together with the color mode the run
// resolved, so the final error line matches the rest of the output.
type CommandError struct {
	Err   error
	Color string
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the command error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorColor returns the color mode for printing err. Errors raised before
// the configuration was loaded fall back to NO_COLOR detection.
func ErrorColor(err error) string {
	var ce *CommandError
	if errors.As(err, &ce) && ce.Color != "" {
		return ce.Color
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return config.ColorNever
	}
	return config.ColorAuto
}

func (a *app) dispatch(ctx context.Context, fs *flag.FlagSet, subcommand string, args []string) error {
	switch subcommand {
	case "init":
		return a.initCommand(args)
	case "add":
		return a.addCommand(args)
	case "list", "ls":
		return a.listCommand(args)
	case "info":
		return a.infoCommand(args)
	case "modify":
		return a.modifyCommand(args)
	case "remove", "rm":
		return a.removeCommand(args)
	case "export":
		return a.exportCommand(args)
	case "import":
		return a.importCommand(args)
	case "view":
		return a.viewCommand(ctx, args)
	case "config":
		return a.configCommand(args)
	case "version":
		return versionCommand(a.streams.Out)
	case "help":
		printUsage(fs, a.streams.Out)
		return nil
	default:
		printUsage(fs, a.streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newFlagSet creates a subcommand flag set that reports to stderr.
func (a *app) newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet("tasklist "+name, flag.ContinueOnError)
	fs.SetOutput(a.streams.Err)
	fs.Usage = func() {
		fmt.Fprintf(a.streams.Err, "Usage: tasklist %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// workspace resolves the task list location for the working directory.
func (a *app) workspace() listdir.Workspace {
	return listdir.New(a.cfg.WorkDir, a.cfg.FileName)
}

// openStore discovers and loads the task list.
func (a *app) openStore() (*store.Store, string, error) {
	path, err := a.workspace().Discover()
	if err != nil {
		return nil, "", err
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, "", err
	}
	a.logger.Debug("loaded task list", "path", path, "tasks", s.Len())
	return s, path, nil
}

// saveStore writes the task list back.
func (a *app) saveStore(s *store.Store, path string) error {
	if err := s.Save(path); err != nil {
		return err
	}
	a.logger.Debug("saved task list", "path", path, "tasks", s.Len())
	return nil
}

// configCommand prints the effective configuration or an example file.
func (a *app) configCommand(args []string) error {
	fs := a.newFlagSet("config", "[-example]")
	example := fs.Bool("example", false, "Print an example configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w := a.streams.Out
	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}

	if len(a.sources.Files) == 0 {
		fmt.Fprintln(w, "# no config files found")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(w, "# loaded %s\n", f)
	}
	for _, field := range config.Fields() {
		fmt.Fprintf(w, "%-16s = %-32q # %s\n", field, a.cfg.Value(field), a.sources.Sources[field])
	}
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - A priority-ordered task list kept in a single file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init                          Create a task list in the current directory")
	fmt.Fprintln(w, "  add [-p P] <message...>       Add a task (P is min, max or a whole number)")
	fmt.Fprintln(w, "  list [-l]                     List tasks, ID 1 first (default command)")
	fmt.Fprintln(w, "  info <ID>                     Show every detail of a task")
	fmt.Fprintln(w, "  modify [-p P] [-m MSG] <ID>   Change the priority or message of a task")
	fmt.Fprintln(w, "  remove <ID>                   Remove a task")
	fmt.Fprintln(w, "  export [-format F] [-o PATH]  Write the task list as JSON or YAML")
	fmt.Fprintln(w, "  import [-format F] [-replace] <PATH|->")
	fmt.Fprintln(w, "                                Add the tasks of a JSON or YAML document")
	fmt.Fprintln(w, "  view                          Browse the task list, reloading on change")
	fmt.Fprintln(w, "  config [-example]             Show the effective configuration")
	fmt.Fprintln(w, "  version                       Show version information")
	fmt.Fprintln(w, "  help                          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
