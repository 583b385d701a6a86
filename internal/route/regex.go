package route

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/footprint-tools/sealion/internal/input"
)

// delimiters accepted around a pattern, as in "/^v[0-9]+$/i".
const delimiters = "/#~%@!|"

// Regex matches values against a backtracking regular expression.
type Regex struct {
	source string
	re     *regexp2.Regexp
}

// NewRegex compiles pattern. A pattern wrapped in delimiters may carry
// trailing modifiers: i, m, s, x and u.
func NewRegex(pattern string) (*Regex, error) {
	expr, opts, err := splitDelimited(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, fmt.Errorf("route: compile regex %q: %w", pattern, err)
	}
	return &Regex{source: pattern, re: re}, nil
}

func (r *Regex) Check(value input.Value, _ string) bool {
	ok, err := r.re.MatchString(value.String())
	return err == nil && ok
}

func (r *Regex) String() string { return "R{" + r.source + "}" }
func (*Regex) constraint()      {}

func splitDelimited(pattern string) (string, regexp2.RegexOptions, error) {
	if len(pattern) < 2 || !strings.ContainsRune(delimiters, rune(pattern[0])) {
		return pattern, regexp2.None, nil
	}
	delim := pattern[0]
	end := strings.LastIndexByte(pattern, delim)
	if end == 0 {
		return pattern, regexp2.None, nil
	}

	opts := regexp2.None
	for _, mod := range pattern[end+1:] {
		switch mod {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'u':
		default:
			return "", regexp2.None, fmt.Errorf("route: unknown regex modifier %q in %q", mod, pattern)
		}
	}

	return pattern[1:end], opts, nil
}
