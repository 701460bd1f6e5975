package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Done   func(TargetArgs) (Result, error)
	Undo   func(TargetArgs) (Result, error)
	Delete func(TargetArgs) (Result, error)
	View   func(ViewArgs) (Result, error)
	Lang   func(LangArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeUndo:
		if handlers.Undo == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "undo handler not configured"}
		}
		return handlers.Undo(*cmd.Undo)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeView:
		if handlers.View == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "view handler not configured"}
		}
		return handlers.View(*cmd.View)
	case TypeLang:
		if handlers.Lang == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "lang handler not configured"}
		}
		return handlers.Lang(*cmd.Lang)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
