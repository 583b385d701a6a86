package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/sealion/internal/input"
)

// ErrUnsupportedConstraint is returned by Declare for values it can't compile.
var ErrUnsupportedConstraint = errors.New("route: unsupported constraint")

// Predicate is a custom constraint. key is the option or flag name, or the
// decimal position for arguments.
type Predicate func(value input.Value, key string) bool

// Constraint is one compiled rule. The set of implementations is closed:
// Literal, Bool, *Regex and Func.
type Constraint interface {
	Check(value input.Value, key string) bool
	String() string
	constraint()
}

// Literal matches values equal to it, ignoring case.
type Literal string

func (l Literal) Check(value input.Value, _ string) bool {
	return strings.EqualFold(string(l), value.String())
}

func (l Literal) String() string { return strconv.Quote(string(l)) }
func (Literal) constraint()      {}

// Bool matches values by truthiness. "0", "false" and "" (any case) are
// false, everything else is true. A missing value is false.
type Bool bool

func (b Bool) Check(value input.Value, _ string) bool {
	return truthy(value.String()) == bool(b)
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) constraint()      {}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "0", "false", "":
		return false
	}
	return true
}

// Func wraps a Predicate.
type Func Predicate

func (f Func) Check(value input.Value, key string) bool {
	return f(value, key)
}

func (Func) String() string { return "func" }
func (Func) constraint()    {}

// Declare compiles a raw declaration:
//
//   - a Constraint is kept as is
//   - a Predicate or a func(input.Value, string) bool becomes Func
//   - a bool, or an integer exactly 0 or 1, becomes Bool
//   - "R{pattern}" becomes a *Regex
//   - any other string or number becomes a Literal
func Declare(raw any) (Constraint, error) {
	switch v := raw.(type) {
	case Constraint:
		return v, nil
	case Predicate:
		if v == nil {
			return nil, fmt.Errorf("%w: nil predicate", ErrUnsupportedConstraint)
		}
		return Func(v), nil
	case func(input.Value, string) bool:
		if v == nil {
			return nil, fmt.Errorf("%w: nil predicate", ErrUnsupportedConstraint)
		}
		return Func(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return fromString(v)
	case int:
		return fromInt(int64(v))
	case int8:
		return fromInt(int64(v))
	case int16:
		return fromInt(int64(v))
	case int32:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return Literal(strconv.FormatFloat(float64(v), 'f', -1, 32)), nil
	case float64:
		return Literal(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case fmt.Stringer:
		return fromString(v.String())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedConstraint, raw)
	}
}

func fromInt(n int64) (Constraint, error) {
	if n == 0 || n == 1 {
		return Bool(n == 1), nil
	}
	return Literal(strconv.FormatInt(n, 10)), nil
}

func fromUint(n uint64) (Constraint, error) {
	if n == 0 || n == 1 {
		return Bool(n == 1), nil
	}
	return Literal(strconv.FormatUint(n, 10)), nil
}

func fromString(s string) (Constraint, error) {
	if body, ok := regexBody(s); ok {
		return NewRegex(body)
	}
	return Literal(s), nil
}

// regexBody extracts pattern from "R{pattern}". The pattern must be
// non-empty and fit on one line.
func regexBody(s string) (string, bool) {
	if len(s) < 4 || !strings.HasPrefix(s, "R{") || !strings.HasSuffix(s, "}") {
		return "", false
	}
	body := s[2 : len(s)-1]
	if strings.ContainsAny(body, "\r\n") {
		return "", false
	}
	return body, true
}
