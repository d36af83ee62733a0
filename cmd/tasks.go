package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nibzard/tasklist/internal/exchange"
	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/task"
	"github.com/nibzard/tasklist/internal/ui"
)

var (
	// ErrNoModification is returned by modify when neither -p nor -m is given.
	ErrNoModification = errors.New("nothing to modify: give -p PRIORITY, -m MESSAGE or both")
	// ErrEmptyMessage is returned by add when the message is blank.
	ErrEmptyMessage = errors.New("the task message cannot be empty")
)

const priorityChangedWarning = "the priority was changed and as a result the task IDs might have also changed"

// now is replaced in tests.
var now = time.Now

// initCommand creates an empty task list in the working directory.
func (a *app) initCommand(args []string) error {
	fs := a.newFlagSet("init", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	ws := a.workspace()
	exists, err := ws.Exists()
	if err != nil {
		return err
	}
	if exists && !a.cfg.AssumeYes {
		a.printer.Warning("this directory already has a task list")
		ok, err := a.printer.Confirm(a.streams.In, "Do you wish to overwrite it?")
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			a.logger.Debug("init declined", "path", ws.Path())
			return nil
		}
	}

	if err := store.Create(ws.Path()); err != nil {
		return err
	}
	a.logger.Debug("created task list", "path", ws.Path())
	a.printer.Success("Initiated", "a new task list in the current directory")
	return nil
}

// addCommand inserts a new task.
func (a *app) addCommand(args []string) error {
	fs := a.newFlagSet("add", "[-p PRIORITY] <message...>")
	priorityArg := fs.String("p", a.cfg.DefaultPriority, "Priority: min, max or a whole number")
	fs.StringVar(priorityArg, "priority", a.cfg.DefaultPriority, "Priority: min, max or a whole number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	priority := a.cfg.DefaultTaskPriority()
	if flagSet(fs, "p", "priority") {
		var err error
		if priority, err = parsePriorityArg(*priorityArg); err != nil {
			return err
		}
	}
	message := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	s, path, err := a.openStore()
	if err != nil {
		return err
	}
	ordinal := s.Insert(task.New(priority, message, now()))
	if err := a.saveStore(s, path); err != nil {
		return err
	}
	a.logger.Debug("added task", "ordinal", ordinal, "priority", priority)
	a.printer.Success("Added", fmt.Sprintf("a new task with ID %d", ordinal))
	return nil
}

// listCommand prints every task, ordinal 1 first.
func (a *app) listCommand(args []string) error {
	fs := a.newFlagSet("list", "[-l]")
	long := fs.Bool("l", false, "Show the priority of each task")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	s, _, err := a.openStore()
	if err != nil {
		return err
	}
	a.printer.List(s.List(), *long)
	return nil
}

// infoCommand prints the details of one task.
func (a *app) infoCommand(args []string) error {
	fs := a.newFlagSet("info", "<ID>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ordinal, err := ordinalArg(fs)
	if err != nil {
		return err
	}

	s, _, err := a.openStore()
	if err != nil {
		return err
	}
	t, err := s.Get(ordinal)
	if err != nil {
		return err
	}
	a.printer.Info(store.Entry{Ordinal: ordinal, Task: *t})
	return nil
}

// modifyCommand changes the priority and/or message of one task.
func (a *app) modifyCommand(args []string) error {
	fs := a.newFlagSet("modify", "[-p PRIORITY] [-m MESSAGE] <ID>")
	priorityArg := fs.String("p", "", "New priority: min, max or a whole number")
	fs.StringVar(priorityArg, "priority", "", "New priority: min, max or a whole number")
	messageArg := fs.String("m", "", "New message")
	fs.StringVar(messageArg, "message", "", "New message")
	if err := fs.Parse(args); err != nil {
		return err
	}

	changePriority := flagSet(fs, "p", "priority")
	changeMessage := flagSet(fs, "m", "message")
	if !changePriority && !changeMessage {
		return ErrNoModification
	}

	ordinal, err := ordinalArg(fs)
	if err != nil {
		return err
	}
	var priority task.Priority
	if changePriority {
		if priority, err = parsePriorityArg(*priorityArg); err != nil {
			return err
		}
	}
	if changeMessage && strings.TrimSpace(*messageArg) == "" {
		return ErrEmptyMessage
	}

	s, path, err := a.openStore()
	if err != nil {
		return err
	}
	// The message is set first: changing the priority may move the task.
	if changeMessage {
		if err := s.SetMessage(ordinal, *messageArg); err != nil {
			return err
		}
	}
	if changePriority {
		if err := s.SetPriority(ordinal, priority); err != nil {
			return err
		}
	}
	if err := a.saveStore(s, path); err != nil {
		return err
	}

	a.logger.Debug("modified task", "ordinal", ordinal, "priority_changed", changePriority, "message_changed", changeMessage)
	a.printer.Success("Modified", "the specified task")
	if changePriority {
		a.printer.Warning(priorityChangedWarning)
	}
	return nil
}

// removeCommand deletes one task.
func (a *app) removeCommand(args []string) error {
	fs := a.newFlagSet("remove", "<ID>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ordinal, err := ordinalArg(fs)
	if err != nil {
		return err
	}

	s, path, err := a.openStore()
	if err != nil {
		return err
	}
	if _, err := s.Remove(ordinal); err != nil {
		return err
	}
	if err := a.saveStore(s, path); err != nil {
		return err
	}
	a.logger.Debug("removed task", "ordinal", ordinal)
	a.printer.Success("Removed", "the specified task")
	return nil
}

// exportCommand writes the task list as an exchange document.
func (a *app) exportCommand(args []string) error {
	fs := a.newFlagSet("export", "[-format json|yaml] [-o PATH]")
	formatArg := fs.String("format", "", "Document format: json or yaml (default from -o extension, else json)")
	output := fs.String("o", "", "Write to PATH instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	format, err := resolveFormat(*formatArg, *output)
	if err != nil {
		return err
	}

	s, _, err := a.openStore()
	if err != nil {
		return err
	}
	doc := exchange.FromStore(s)

	if *output == "" {
		return doc.Encode(a.streams.Out, format)
	}
	f, err := os.OpenFile(*output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := doc.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	a.logger.Debug("exported task list", "path", *output, "format", format, "tasks", len(doc.Tasks))
	a.printer.Success("Exported", fmt.Sprintf("%d tasks to %s", len(doc.Tasks), *output))
	return nil
}

// importCommand adds or replaces tasks from an exchange document.
func (a *app) importCommand(args []string) error {
	fs := a.newFlagSet("import", "[-format json|yaml] [-replace] <PATH|->")
	formatArg := fs.String("format", "", "Document format: json or yaml (default from the file extension, else json)")
	replace := fs.Bool("replace", false, "Replace the whole task list instead of adding to it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one PATH argument (use - for stdin)")
	}
	source := fs.Arg(0)
	format, err := resolveFormat(*formatArg, source)
	if err != nil {
		return err
	}

	var data []byte
	if source == "-" {
		data, err = io.ReadAll(a.streams.In)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("read import document: %w", err)
	}
	doc, err := exchange.Decode(data, format)
	if err != nil {
		return err
	}

	s, path, err := a.openStore()
	if err != nil {
		return err
	}
	var n int
	if *replace {
		if s, err = exchange.Replace(doc); err != nil {
			return err
		}
		n = s.Len()
	} else if n, err = exchange.Import(s, doc); err != nil {
		return err
	}
	if err := a.saveStore(s, path); err != nil {
		return err
	}
	a.logger.Debug("imported tasks", "source", source, "format", format, "tasks", n, "replace", *replace)
	a.printer.Success("Imported", fmt.Sprintf("%d tasks", n))
	return nil
}

// viewCommand opens the live task list browser.
func (a *app) viewCommand(ctx context.Context, args []string) error {
	fs := a.newFlagSet("view", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	path, err := a.workspace().Discover()
	if err != nil {
		return err
	}
	return ui.RunViewer(ctx, path, ui.ViewerOptions{
		Color:      a.cfg.Color,
		DateFormat: a.cfg.DateFormat,
		Logger:     a.logger,
	})
}

// flagSet reports whether any of names was given on the command line.
func flagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// ordinalArg parses the single <ID> positional argument.
func ordinalArg(fs *flag.FlagSet) (int, error) {
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one <TASK_ID> argument, got %d", fs.NArg())
	}
	ordinal, err := store.ParseOrdinal(fs.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid value '%s' for '<TASK_ID>': %w", fs.Arg(0), err)
	}
	return ordinal, nil
}

func parsePriorityArg(s string) (task.Priority, error) {
	p, err := task.ParsePriority(s)
	if err != nil {
		return task.Priority{}, fmt.Errorf("invalid value '%s' for '--priority <PRIORITY>': %w", s, err)
	}
	return p, nil
}

// resolveFormat picks the document format from the flag or the file extension.
func resolveFormat(flagValue, path string) (exchange.Format, error) {
	if flagValue != "" {
		return exchange.ParseFormat(flagValue)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return exchange.FormatYAML, nil
	default:
		return exchange.FormatJSON, nil
	}
}
