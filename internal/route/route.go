// Package route compiles per-category constraint declarations into rules
// that a Matcher evaluates against parsed input.
package route

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/sealion/internal/input"
)

var (
	ErrAlreadyDeclared = errors.New("route: constraints can be set only once per category")
	ErrForeignMatcher  = errors.New("route: only the bound matcher can query a route")
	ErrUnknownCategory = errors.New("route: only arguments, options and flags can be queried")
)

// Matcher evaluates a route against a parsed record and returns the
// categories that fully matched, in Matchable order.
type Matcher interface {
	Match(r Route, rec input.Record) ([]Category, error)
}

// Route holds compiled constraints for one command handler.
type Route interface {
	WithArguments(decl map[int]any) (Route, error)
	WithOptions(decl map[string]any) (Route, error)
	WithFlags(decl map[string]any) (Route, error)
	// Constraints returns the rules of c. Only the Matcher the route was
	// built for may ask.
	Constraints(c Category, requester Matcher) ([]Rule, error)
}

// Rule binds a constraint to an option or flag name, or to an argument position.
type Rule struct {
	Key        string
	Constraint Constraint
}

// Default is the standard Route.
type Default struct {
	owner    Matcher
	rules    map[Category][]Rule
	declared map[Category]bool
}

// New returns an empty route bound to owner.
func New(owner Matcher) *Default {
	return &Default{
		owner:    owner,
		rules:    map[Category][]Rule{},
		declared: map[Category]bool{},
	}
}

// WithArguments declares positional constraints. Keys are sorted and then
// packed, so {0: a, 5: b} constrains the first two arguments.
func (d *Default) WithArguments(decl map[int]any) (Route, error) {
	if err := d.lock(Arguments); err != nil {
		return d, err
	}

	positions := make([]int, 0, len(decl))
	for pos := range decl {
		positions = append(positions, pos)
	}
	slices.Sort(positions)

	rules := make([]Rule, 0, len(positions))
	for _, pos := range positions {
		c, err := Declare(decl[pos])
		if err != nil {
			return d, fmt.Errorf("argument %d: %w", pos, err)
		}
		rules = append(rules, Rule{Key: strconv.Itoa(len(rules)), Constraint: c})
	}

	d.rules[Arguments] = rules
	return d, nil
}

func (d *Default) WithOptions(decl map[string]any) (Route, error) {
	return d.named(Options, decl)
}

func (d *Default) WithFlags(decl map[string]any) (Route, error) {
	return d.named(Flags, decl)
}

// named compiles option or flag declarations. Numeric keys are dropped.
func (d *Default) named(c Category, decl map[string]any) (Route, error) {
	if err := d.lock(c); err != nil {
		return d, err
	}

	keys := make([]string, 0, len(decl))
	for k := range decl {
		if !isNumeric(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	rules := make([]Rule, 0, len(keys))
	for _, k := range keys {
		con, err := Declare(decl[k])
		if err != nil {
			return d, fmt.Errorf("%s %q: %w", strings.TrimSuffix(c.String(), "s"), k, err)
		}
		rules = append(rules, Rule{Key: k, Constraint: con})
	}

	d.rules[c] = rules
	return d, nil
}

func (d *Default) lock(c Category) error {
	if d.declared[c] {
		return fmt.Errorf("%w: %s", ErrAlreadyDeclared, c)
	}
	d.declared[c] = true
	return nil
}

func (d *Default) Constraints(c Category, requester Matcher) ([]Rule, error) {
	if !SameMatcher(d.owner, requester) {
		return nil, ErrForeignMatcher
	}
	switch c {
	case Arguments, Options, Flags:
		return slices.Clone(d.rules[c]), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
}

// Declarations groups the constraints of every category for one route.
// Nil maps leave their category undeclared.
type Declarations struct {
	Arguments map[int]any
	Options   map[string]any
	Flags     map[string]any
}

// Apply declares each non-nil category on rt, arguments first.
func (d Declarations) Apply(rt Route) (Route, error) {
	var err error
	if d.Arguments != nil {
		if rt, err = rt.WithArguments(d.Arguments); err != nil {
			return nil, fmt.Errorf("arguments: %w", err)
		}
	}
	if d.Options != nil {
		if rt, err = rt.WithOptions(d.Options); err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
	}
	if d.Flags != nil {
		if rt, err = rt.WithFlags(d.Flags); err != nil {
			return nil, fmt.Errorf("flags: %w", err)
		}
	}
	return rt, nil
}

// SameMatcher reports whether a and b are the same matcher instance.
// Matchers of non-comparable types never compare equal.
func SameMatcher(a, b Matcher) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNumeric accepts decimal integers and floats with an optional sign,
// fraction and exponent, surrounded by optional whitespace.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	digits, i := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i, digits = i+1, digits+1
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i, digits = i+1, digits+1
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i, exp = i+1, exp+1
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

var _ Route = (*Default)(nil)
