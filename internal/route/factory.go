package route

import "reflect"

// Factory builds the Route attached to each registered command.
type Factory interface {
	New(owner Matcher) Route
}

type factory struct {
	build func(owner Matcher) Route
}

// NewFactory returns a Factory using build. When build is nil, or returns
// nil for a given owner, the Default route is used instead.
func NewFactory(build func(owner Matcher) Route) Factory {
	return factory{build: build}
}

func (f factory) New(owner Matcher) Route {
	if f.build != nil {
		if r := f.build(owner); !isNil(r) {
			return r
		}
	}
	return New(owner)
}

func isNil(r Route) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
