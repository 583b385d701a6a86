// Package dispatchers routes a parsed command line to the first registered
// handler whose constraints it satisfies.
package dispatchers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/matcher"
	"github.com/footprint-tools/sealion/internal/route"
)

// ErrInvalidCommandName is returned by AddCommand for an empty name.
var ErrInvalidCommandName = errors.New("dispatchers: route command name must be a non-empty string")

type entry struct {
	route   route.Route
	handler any
}

// Router keeps command routes in registration order and resolves the
// input against them once.
type Router struct {
	input      input.Parser
	dispatcher Dispatcher
	matcher    route.Matcher
	factory    route.Factory
	logger     domain.Logger

	names  []string
	routes map[string][]entry

	errors   []Result
	response Result
}

// Option configures a Router.
type Option func(*Router)

func WithDispatcher(d Dispatcher) Option {
	return func(r *Router) {
		if d != nil {
			r.dispatcher = d
		}
	}
}

func WithMatcher(m route.Matcher) Option {
	return func(r *Router) {
		if m != nil {
			r.matcher = m
		}
	}
}

func WithRouteFactory(f route.Factory) Option {
	return func(r *Router) {
		if f != nil {
			r.factory = f
		}
	}
}

func WithLogger(l domain.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRouter returns a Router reading from in. A nil parser behaves like
// empty input.
func NewRouter(in input.Parser, opts ...Option) *Router {
	if in == nil {
		in = input.NewArgv(nil)
	}
	r := &Router{
		input:      in,
		dispatcher: Default{},
		factory:    route.NewFactory(nil),
		logger:     log.NopLogger{},
		routes:     map[string][]entry{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.matcher == nil {
		r.matcher = matcher.New(matcher.WithLogger(r.logger))
	}
	return r
}

// AddCommand registers handler under name and returns its route so the
// caller can declare constraints. Routes sharing a name are tried in the
// order they were added.
func (r *Router) AddCommand(name string, handler any) (route.Route, error) {
	if name == "" {
		return nil, ErrInvalidCommandName
	}

	rt := r.factory.New(r.matcher)
	if _, ok := r.routes[name]; !ok {
		r.names = append(r.names, name)
	}
	r.routes[name] = append(r.routes[name], entry{route: rt, handler: handler})

	return rt, nil
}

// Resolve parses the input and returns the Result of the first fully
// matching route, or the error of the last one tried. The result is
// computed once; later calls return it unchanged.
//
// Parse and access failures are returned as errors and are not cached.
func (r *Router) Resolve() (Result, error) {
	if r.response != nil {
		return r.response, nil
	}

	if err := r.input.Parse(); err != nil {
		return nil, fmt.Errorf("dispatchers: parse input: %w", err)
	}

	rec, err := r.input.Record()
	switch {
	case errors.Is(err, input.ErrNotParsed):
		rec = input.Record{}.Clone()
	case err != nil:
		return nil, fmt.Errorf("dispatchers: read input: %w", err)
	}

	queue, ok := r.routes[rec.Command]
	if rec.Command == "" || !ok {
		r.logger.Debug("router: no routes for command %q", rec.Command)
		r.errors = nil
		r.response = r.dispatcher.Error("", []route.Category{route.Command}, rec)
		return r.response, nil
	}

	r.errors = nil
	var last Result
	for i, e := range queue {
		matched, err := r.matcher.Match(e.route, rec)
		if err != nil {
			return nil, fmt.Errorf("dispatchers: %s route %d: %w", rec.Command, i, err)
		}

		notMatched := route.Missing(matched)
		if len(notMatched) == 0 {
			r.logger.Debug("router: %s route %d matched", rec.Command, i)
			r.errors = nil
			r.response = r.dispatcher.Success(rec.Command, e.handler, rec)
			return r.response, nil
		}

		r.logger.Debug("router: %s route %d not matched: %v", rec.Command, i, notMatched)
		last = r.dispatcher.Error(rec.Command, notMatched, rec)
		r.errors = append(r.errors, last)
	}

	r.response = last
	return r.response, nil
}

// Errors returns the error of every route that failed during the last
// resolution. It is empty after a success or an unknown command.
func (r *Router) Errors() []Result {
	return slices.Clone(r.errors)
}

// Commands returns registered command names in registration order.
func (r *Router) Commands() []string {
	return slices.Clone(r.names)
}

// Suggest returns up to max registered names close to name.
func (r *Router) Suggest(name string, max int) []string {
	return FindSimilarCommands(name, r.names, max)
}
