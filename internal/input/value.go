package input

import "strconv"

// Kind tells how a named token carried its value.
type Kind uint8

const (
	// KindMissing is the zero value: the key was not present in the input.
	KindMissing Kind = iota
	// KindTrue marks a bare token such as "-v" or "--force".
	KindTrue
	// KindText marks a token with an "=value" suffix, possibly empty.
	KindText
)

// Value is the value of one option or flag.
type Value struct {
	kind Kind
	text string
}

// True returns the value of a bare token.
func True() Value {
	return Value{kind: KindTrue}
}

// Text returns the value of a token that carried "=text".
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Present reports whether the key appeared in the input at all.
func (v Value) Present() bool {
	return v.kind != KindMissing
}

// String renders the value the way constraints see it:
// missing is "", a bare token is "1", text is returned as is.
func (v Value) String() string {
	switch v.kind {
	case KindTrue:
		return "1"
	case KindText:
		return v.text
	default:
		return ""
	}
}

// GoString is used by %#v in test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindTrue:
		return "input.True()"
	case KindText:
		return "input.Text(" + strconv.Quote(v.text) + ")"
	default:
		return "input.Value{}"
	}
}
