// Package commands parses command-palette input and hosts the best-effort
// natural-language time extractor used by quick-add.
package commands

import (
	"fmt"
	"strings"

	"daytick/internal/dates"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeGoto  Type = "goto"
	TypeView  Type = "view"
	TypeTheme Type = "theme"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the quick-add text after the time phrase (if any) has been
// extracted into Time.
type AddArgs struct {
	Text string
	Time string
}

type GotoArgs struct {
	Date string
}

type ViewArgs struct {
	Name string
}

type ThemeArgs struct {
	Name string
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Goto  *GotoArgs
	View  *ViewArgs
	Theme *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeView:
		return parseView(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	clock, rest, found := ExtractTime(text)
	add := &AddArgs{Text: text}
	if found {
		add.Text = rest
		add.Time = clock
	}
	if add.Text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: add}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date (YYYY-MM-DD)"}
	}
	day := args[0]
	if !dates.Valid(day) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date: %s", day)}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: day}}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires one of day, week, history"}
	}
	name := strings.ToLower(args[0])
	switch name {
	case "day", "week", "history":
		return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Name: name}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", name)}
	}
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires dark or light"}
	}
	name := strings.ToLower(args[0])
	if name != "dark" && name != "light" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", name)}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}
