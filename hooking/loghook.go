package hooking

import (
	"log"
	"reflect"
)

// LogHookBase provides the logger shared by hooks that print.
type LogHookBase struct {
	*log.Logger
}

// ValidationLogger is a hook that prints the outcome of each validation.
type ValidationLogger struct {
	LogHookBase
}

// NewValidationLogger returns a ValidationLogger that writes to logger.
func NewValidationLogger(logger *log.Logger) *ValidationLogger {
	h := new(ValidationLogger)
	h.Logger = logger

	return h
}

// Func writes the validation outcome into the logger.
func (h *ValidationLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAfterValidate {
		return
	}

	err, _ := ctx.Detail.(error)
	if err != nil {
		h.Printf("%s: invalid: %v", typeName(ctx.Item), err)
		return
	}

	h.Printf("%s: valid", typeName(ctx.Item))
}

func typeName(item any) string {
	if item == nil {
		return "<nil>"
	}

	return reflect.TypeOf(item).String()
}
