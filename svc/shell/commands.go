package shell

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/pkg/sanitizer"
	"github.com/dmitrymomot/filecabinet/pkg/validator"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
	"github.com/dmitrymomot/filecabinet/svc/export"
)

type command struct {
	name        string
	description string
	explanation string
	run         func(s *Shell, ctx context.Context, args string)
}

const (
	findUsage   = `Usage: find <firstname|lastname|dateofbirth> "<value>"`
	exportUsage = "Usage: export <csv|xml> <path>"
)

func commandTable() []command {
	return []command{
		{"help", "prints the help screen", "The 'help' command prints the help screen. 'help <command>' explains one command.", (*Shell).help},
		{"exit", "exits the application", "The 'exit' command exits the application.", (*Shell).exit},
		{"stat", "prints statistics", "The 'stat' command prints the number of records.", (*Shell).stat},
		{"create", "creates a new record in the file cabinet", "The 'create' command asks for every field and creates a new record in the file cabinet.", (*Shell).create},
		{"list", "prints records", "The 'list' command prints all records in creation order.", (*Shell).list},
		{"edit", "edits a record", "The 'edit <id>' command asks for every field again and replaces the record.", (*Shell).edit},
		{"find", "finds records by a known value", "The 'find' command finds records by a known value. " + findUsage, (*Shell).find},
		{"export", "exports records to a csv or xml file", "The 'export' command writes all records to a file. " + exportUsage, (*Shell).export},
	}
}

func (s *Shell) help(_ context.Context, args string) {
	if args != "" {
		if cmd, ok := s.lookup(args); ok {
			s.println(cmd.explanation)
		} else {
			s.printf("There is no explanation for '%s' command.\n", args)
		}
		s.println()
		return
	}

	s.println("Available commands:")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, cmd := range s.commands {
		tw.AppendRow(table.Row{cmd.name, cmd.description})
	}
	s.println(tw.Render())
	s.println()
}

func (s *Shell) exit(_ context.Context, _ string) {
	s.println("Exiting an application...")
	s.running = false
}

func (s *Shell) stat(_ context.Context, _ string) {
	s.printf("%d record(s).\n", s.store.Stat())
}

// create repeats the whole entry until the store accepts it or input ends.
func (s *Shell) create(ctx context.Context, _ string) {
	for {
		p, err := s.readParams(ctx)
		if err != nil {
			s.println()
			s.println("Record creation is canceled.")
			return
		}

		id, err := s.store.Create(p)
		if err != nil {
			s.logger.WarnContext(ctx, "record rejected", logger.Command("create"), logger.Error(err))
			s.printError(err)
			if !validator.IsValidationError(err) {
				return
			}
			s.println("Your data is incorrect, please try again")
			continue
		}

		s.printf("Record #%d is created.\n", id)
		return
	}
}

func (s *Shell) list(_ context.Context, _ string) {
	s.printRecords(s.store.List())
}

func (s *Shell) edit(ctx context.Context, args string) {
	id, err := strconv.Atoi(args)
	if err != nil {
		s.printf("'%s' is not a valid record id.\n", args)
		return
	}
	if id < 1 || id > s.store.Stat() {
		s.printf("#%d record is not found.\n", id)
		return
	}

	p, err := s.readParams(ctx)
	if err != nil {
		s.println()
		s.println("Record editing is canceled.")
		return
	}

	if err := s.store.Edit(id, p); err != nil {
		s.logger.WarnContext(ctx, "record edit rejected",
			logger.Command("edit"),
			logger.RecordID(id),
			logger.Error(err),
		)
		if errors.Is(err, cabinet.ErrRecordNotFound) {
			s.printf("#%d record is not found.\n", id)
			return
		}
		s.printError(err)
		return
	}

	s.printf("Record #%d is updated.\n", id)
}

// find expects a field name followed by a value, optionally quoted.
func (s *Shell) find(_ context.Context, args string) {
	name, value, ok := strings.Cut(args, " ")
	value = sanitizer.Unquote(value)
	if !ok || value == "" {
		s.println(findUsage)
		return
	}

	field, err := cabinet.ParseSearchField(name)
	if err != nil {
		s.printf("Unknown search field '%s'.\n", name)
		return
	}

	records, err := s.store.Find(field, value)
	if err != nil {
		s.println(err)
		return
	}
	s.printRecords(records)
}

func (s *Shell) export(ctx context.Context, args string) {
	if s.exporter == nil {
		s.println("Export is not configured.")
		return
	}

	name, path, ok := strings.Cut(args, " ")
	path = sanitizer.Unquote(path)
	if !ok || path == "" {
		s.println(exportUsage)
		return
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		s.printf("Unsupported export format '%s'.\n", name)
		return
	}

	if s.exporter.Exists(ctx, path) {
		answer, err := s.readLine("File is exist - rewrite " + path + "? [Y/n] ")
		if err != nil {
			s.println()
			return
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "n", "no":
			return
		}
	}

	if _, err := s.exporter.Export(ctx, format, path); err != nil {
		s.printf("Export failed: %v\n", err)
		return
	}
	s.printf("All records are exported to file %s.\n", path)
}

func (s *Shell) printRecords(records []cabinet.Record) {
	for _, rec := range records {
		s.println("#" + strings.Join(rec.Values(), ", "))
	}
}
