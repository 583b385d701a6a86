package input

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Record is the structured form of one command line.
type Record struct {
	Command   string
	Arguments []string
	Options   map[string]Value
	Flags     map[string]Value
}

func newRecord() Record {
	return Record{
		Arguments: []string{},
		Options:   map[string]Value{},
		Flags:     map[string]Value{},
	}
}

// Clone returns a deep copy so callers can't mutate parser state.
func (r Record) Clone() Record {
	out := Record{
		Command:   r.Command,
		Arguments: slices.Clone(r.Arguments),
		Options:   maps.Clone(r.Options),
		Flags:     maps.Clone(r.Flags),
	}
	if out.Arguments == nil {
		out.Arguments = []string{}
	}
	if out.Options == nil {
		out.Options = map[string]Value{}
	}
	if out.Flags == nil {
		out.Flags = map[string]Value{}
	}
	return out
}

// Argument returns the positional argument at index i.
func (r Record) Argument(i int) Value {
	if i < 0 || i >= len(r.Arguments) {
		return Value{}
	}
	return Text(r.Arguments[i])
}

func (r Record) Option(name string) Value {
	return r.Options[name]
}

func (r Record) Flag(name string) Value {
	return r.Flags[name]
}

// HasOption returns true if --name was given, with or without a value.
func (r Record) HasOption(name string) bool {
	return r.Options[name].Present()
}

// HasFlag returns true if -name was given, with or without a value.
func (r Record) HasFlag(name string) bool {
	return r.Flags[name].Present()
}

// OptionString returns the text of --name=text, or defaultVal if the
// option is absent or bare.
func (r Record) OptionString(name, defaultVal string) string {
	v := r.Options[name]
	if v.Kind() != KindText {
		return defaultVal
	}
	return v.String()
}

// OptionInt returns the integer value of --name=N, or defaultVal if not present or invalid.
func (r Record) OptionInt(name string, defaultVal int) int {
	str := r.OptionString(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Tokens rebuilds an argv-like form of the record. Options and flags come
// after the arguments, sorted by name.
func (r Record) Tokens() []string {
	if r.Command == "" {
		return nil
	}
	out := []string{r.Command}
	out = append(out, r.Arguments...)
	out = append(out, named("--", r.Options)...)
	out = append(out, named("-", r.Flags)...)
	return out
}

func named(prefix string, values map[string]Value) []string {
	keys := slices.Sorted(maps.Keys(values))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v := values[k]
		switch v.Kind() {
		case KindTrue:
			out = append(out, prefix+k)
		case KindText:
			text := v.String()
			if strings.ContainsAny(text, " \t\"") {
				text = "'" + text + "'"
			}
			out = append(out, prefix+k+"="+text)
		}
	}
	return out
}
