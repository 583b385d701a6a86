package dispatchers

import (
	"maps"
	"slices"
	"strings"

	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/route"
)

// Result is what a Dispatcher builds for the Router to return.
type Result interface {
	Matched() bool
}

// Dispatcher turns a resolution into a Result.
type Dispatcher interface {
	// Success is called once, for the first route that fully matched.
	Success(command string, handler any, rec input.Record) Result
	// Error is called for each route that failed. command is empty when
	// the command itself was not recognized.
	Error(command string, notMatched []route.Category, rec input.Record) Result
}

// Mask encodes which categories failed to match.
type Mask uint8

const (
	NotMatched          Mask = 1
	FlagsNotMatched     Mask = 2
	OptionsNotMatched   Mask = 4
	ArgumentsNotMatched Mask = 8
	CommandNotMatched   Mask = 16
)

var categoryBits = []struct {
	category route.Category
	bit      Mask
}{
	{route.Command, CommandNotMatched},
	{route.Arguments, ArgumentsNotMatched},
	{route.Options, OptionsNotMatched},
	{route.Flags, FlagsNotMatched},
}

// MaskOf returns NotMatched combined with the bit of every category in notMatched.
func MaskOf(notMatched []route.Category) Mask {
	mask := NotMatched
	for _, c := range notMatched {
		for _, cb := range categoryBits {
			if cb.category == c {
				mask |= cb.bit
			}
		}
	}
	return mask
}

// Has reports whether c is marked as not matched.
func (m Mask) Has(c route.Category) bool {
	for _, cb := range categoryBits {
		if cb.category == c {
			return m&cb.bit != 0
		}
	}
	return false
}

// Categories lists the failed categories, command first.
func (m Mask) Categories() []route.Category {
	var out []route.Category
	for _, cb := range categoryBits {
		if m&cb.bit != 0 {
			out = append(out, cb.category)
		}
	}
	return out
}

func (m Mask) String() string {
	if m == 0 {
		return "matched"
	}
	cats := m.Categories()
	if len(cats) == 0 {
		return "not matched"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, "|")
}

// Snapshot is the parsed input attached to every Outcome.
type Snapshot struct {
	Arguments []string
	Options   map[string]input.Value
	Flags     map[string]input.Value
}

func snapshot(rec input.Record) Snapshot {
	return Snapshot{
		Arguments: slices.Clone(rec.Arguments),
		Options:   maps.Clone(rec.Options),
		Flags:     maps.Clone(rec.Flags),
	}
}

// Outcome is the Result built by the default dispatcher.
type Outcome struct {
	OK      bool
	Handler any
	Command string
	Mask    Mask
	Input   Snapshot
}

func (o Outcome) Matched() bool {
	return o.OK
}

// Record rebuilds the input record the outcome was built from.
func (o Outcome) Record() input.Record {
	return input.Record{
		Command:   o.Command,
		Arguments: o.Input.Arguments,
		Options:   o.Input.Options,
		Flags:     o.Input.Flags,
	}.Clone()
}

// Default is the standard Dispatcher.
type Default struct{}

func (Default) Success(command string, handler any, rec input.Record) Result {
	return Outcome{
		OK:      true,
		Handler: handler,
		Command: command,
		Input:   snapshot(rec),
	}
}

func (Default) Error(command string, notMatched []route.Category, rec input.Record) Result {
	return Outcome{
		Command: command,
		Mask:    MaskOf(notMatched),
		Input:   snapshot(rec),
	}
}

var _ Dispatcher = Default{}
