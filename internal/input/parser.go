// Package input turns command lines into a Record: a command name followed by
// positional arguments, --options and -flags.
package input

import (
	"errors"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrNotParsed is returned by accessors called before a successful Parse.
var ErrNotParsed = errors.New("input: information is not available on non-parsed input")

// Parser is a one-shot token source.
//
// Parse is idempotent: once it succeeded, further calls do nothing.
// Every accessor fails with ErrNotParsed until then.
type Parser interface {
	Parse() error
	Parsed() bool
	Command() (string, error)
	Arguments() ([]string, error)
	Options() (map[string]Value, error)
	Flags() (map[string]Value, error)
	Record() (Record, error)
}

// tokenPattern classifies everything after the command. Group 4 holds a
// quoted value, group 5 a bare one.
var tokenPattern = regexp2.MustCompile(`^(-{1,2})([^=\s'"]+)(=['"](.*)['"]|=(\S*))?$`, regexp2.None)

// classifySpace is the set trimmed before classification.
const classifySpace = " \t\n\r\x00\x0B"

func classify(tokens []string) Record {
	rec := newRecord()
	if len(tokens) == 0 {
		return rec
	}
	rec.Command = tokens[0]

	for _, tok := range tokens[1:] {
		m, err := tokenPattern.FindStringMatch(strings.Trim(tok, classifySpace))
		if err != nil || m == nil {
			rec.Arguments = append(rec.Arguments, tok)
			continue
		}

		v := True()
		if captured(m.GroupByNumber(3)) {
			if quoted := m.GroupByNumber(4); captured(quoted) {
				v = Text(quoted.String())
			} else {
				v = Text(m.GroupByNumber(5).String())
			}
		}

		target := rec.Options
		if m.GroupByNumber(1).String() == "-" {
			target = rec.Flags
		}
		target[m.GroupByNumber(2).String()] = v
	}

	return rec
}

func captured(g *regexp2.Group) bool {
	return g != nil && len(g.Captures) > 0
}

// state holds what every Parser variant shares.
type state struct {
	parsed bool
	rec    Record
}

func (s *state) use(tokens []string) {
	s.rec = classify(tokens)
	s.parsed = true
}

func (s *state) Parsed() bool {
	return s.parsed
}

func (s *state) Command() (string, error) {
	if !s.parsed {
		return "", ErrNotParsed
	}
	return s.rec.Command, nil
}

func (s *state) Arguments() ([]string, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	return s.rec.Clone().Arguments, nil
}

func (s *state) Options() (map[string]Value, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	return s.rec.Clone().Options, nil
}

func (s *state) Flags() (map[string]Value, error) {
	if !s.parsed {
		return nil, ErrNotParsed
	}
	return s.rec.Clone().Flags, nil
}

func (s *state) Record() (Record, error) {
	if !s.parsed {
		return Record{}, ErrNotParsed
	}
	return s.rec.Clone(), nil
}

// Argv reads already split tokens, typically os.Args[1:].
type Argv struct {
	state
	tokens []string
}

// NewArgv returns a parser over tokens. The program name must already be stripped.
func NewArgv(tokens []string) *Argv {
	return &Argv{tokens: tokens}
}

// Parse classifies the tokens. An empty token list leaves the parser unparsed.
func (a *Argv) Parse() error {
	if a.parsed || len(a.tokens) == 0 {
		return nil
	}
	a.use(a.tokens)
	return nil
}

var (
	_ Parser = (*Argv)(nil)
	_ Parser = (*Line)(nil)
)
