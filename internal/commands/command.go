// Package commands parses the command palette input into typed commands.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeUndo   Type = "undo"
	TypeDelete Type = "delete"
	TypeView   Type = "view"
	TypeLang   Type = "lang"
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

type AddArgs struct {
	Description string
	Category    string
	Color       string
	DueDate     string
}

type TargetArgs struct {
	ID string
}

type ViewArgs struct {
	View string
}

type LangArgs struct {
	Lang string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *TargetArgs
	Undo   *TargetArgs
	Delete *TargetArgs
	View   *ViewArgs
	Lang   *LangArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseTarget(TypeDone, input, args)
	case TypeUndo:
		return parseTarget(TypeUndo, input, args)
	case TypeDelete:
		return parseTarget(TypeDelete, input, args)
	case TypeView:
		return parseView(input, args)
	case TypeLang:
		return parseLang(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits option tokens (type:, due:, color:) from the free-text
// description, wherever they appear.
func parseAdd(raw string, args []string) (Command, error) {
	add := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "type:"):
			add.Category = strings.TrimSpace(arg[len("type:"):])
		case strings.HasPrefix(lower, "due:"):
			add.DueDate = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "color:"):
			add.Color = strings.TrimSpace(arg[len("color:"):])
		default:
			words = append(words, arg)
		}
	}
	add.Description = strings.TrimSpace(strings.Join(words, " "))
	if add.Description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseTarget(t Type, raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", t)}
	}
	target := &TargetArgs{ID: args[0]}
	cmd := Command{Type: t, Raw: raw}
	switch t {
	case TypeDone:
		cmd.Done = target
	case TypeUndo:
		cmd.Undo = target
	case TypeDelete:
		cmd.Delete = target
	}
	return cmd, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires a view name"}
	}
	return Command{Type: TypeView, Raw: raw, View: &ViewArgs{View: strings.ToLower(args[0])}}, nil
}

func parseLang(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "lang requires a language code"}
	}
	return Command{Type: TypeLang, Raw: raw, Lang: &LangArgs{Lang: strings.ToLower(args[0])}}, nil
}
