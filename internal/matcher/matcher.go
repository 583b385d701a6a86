// Package matcher evaluates routes against parsed input.
package matcher

import (
	"fmt"
	"strconv"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/route"
)

// Matcher is the default route.Matcher. Routes recognize their matcher by
// identity, so always share it by pointer.
type Matcher struct {
	logger domain.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger reports failing rules at debug level.
func WithLogger(l domain.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the categories of r that rec fully satisfies.
// A category without rules always matches. A value missing from rec is
// checked as the zero input.Value.
func (m *Matcher) Match(r route.Route, rec input.Record) ([]route.Category, error) {
	matched := make([]route.Category, 0, len(route.Matchable))

	for _, c := range route.Matchable {
		rules, err := r.Constraints(c, m)
		if err != nil {
			return nil, fmt.Errorf("matcher: %s: %w", c, err)
		}
		if m.satisfies(c, rules, rec) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

// satisfies stops at the first failing rule.
func (m *Matcher) satisfies(c route.Category, rules []route.Rule, rec input.Record) bool {
	for i, rule := range rules {
		if rule.Constraint == nil {
			continue
		}

		var value input.Value
		key := rule.Key
		switch c {
		case route.Arguments:
			key = strconv.Itoa(i)
			value = rec.Argument(i)
		case route.Options:
			value = rec.Option(key)
		default:
			value = rec.Flag(key)
		}

		if !rule.Constraint.Check(value, key) {
			m.logger.Debug("matcher: %s %q rejected %q by %s", c, key, value.String(), rule.Constraint)
			return false
		}
	}
	return true
}

var _ route.Matcher = (*Matcher)(nil)
