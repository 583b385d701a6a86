package usage

import (
	"fmt"
	"strings"
)

// InvalidFlag is returned when a global flag can't be parsed.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("sealion: invalid flag '%s'", flag),
	}
}

// FlagError wraps a failure to parse the global flags.
func FlagError(err error) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("sealion: %v. See 'sealion --help'.", err),
		Err:     err,
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("sealion: missing required argument '%s'", arg),
	}
}

// UnknownCommand lists up to a few similar command names when there are any.
func UnknownCommand(command string, suggestions ...string) *Error {
	var msg strings.Builder
	if command == "" {
		msg.WriteString("sealion: no command given. See 'sealion help'.")
	} else {
		fmt.Fprintf(&msg, "sealion: '%s' is not a sealion command. See 'sealion help'.", command)
	}

	if len(suggestions) == 1 {
		fmt.Fprintf(&msg, "\n\nThe most similar command is\n\t%s", suggestions[0])
	} else if len(suggestions) > 1 {
		msg.WriteString("\n\nThe most similar commands are")
		for _, s := range suggestions {
			msg.WriteString("\n\t" + s)
		}
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg.String(),
	}
}

// RouteMismatch is returned when a known command was given input that no
// route accepted. mismatched names the categories that failed.
func RouteMismatch(command string, mismatched []string) *Error {
	what := "input"
	if len(mismatched) > 0 {
		what = strings.Join(mismatched, ", ")
	}
	return &Error{
		Kind:    ErrRouteMismatch,
		Message: fmt.Sprintf("sealion: %s: %s did not match. See 'sealion help %s'.", command, what, command),
	}
}

// InvalidInput wraps a tokenizer failure.
func InvalidInput(err error) *Error {
	return &Error{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf("sealion: %v", err),
		Err:     err,
	}
}

// InvalidRoutes wraps a failure to load or register route definitions.
func InvalidRoutes(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidRoutes,
		Message: fmt.Sprintf("sealion: invalid routes file '%s': %v", path, err),
		Err:     err,
	}
}

// InvalidConfigKey is returned for keys not listed in the configuration schema.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("sealion: '%s' is not a valid config key. See 'sealion config list'.", key),
	}
}
