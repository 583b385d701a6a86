// Package routefile loads command routes from YAML or JSONC documents and
// registers them on a router.
package routefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/route"
)

// Format is the syntax of a routes document.
type Format string

const (
	YAML  Format = "yaml"
	JSONC Format = "jsonc"
)

// ErrUnknownFormat is returned for a file extension that is neither YAML nor JSON.
var ErrUnknownFormat = errors.New("routefile: unknown format")

// Definition is one route declared in a routes document.
type Definition struct {
	Name      string         `yaml:"name" json:"name"`
	Summary   string         `yaml:"summary" json:"summary"`
	Usage     string         `yaml:"usage" json:"usage"`
	Run       string         `yaml:"run" json:"run"`
	Arguments map[int]any    `yaml:"arguments" json:"arguments"`
	Options   map[string]any `yaml:"options" json:"options"`
	Flags     map[string]any `yaml:"flags" json:"flags"`

	tmpl *template.Template
}

// Document is the top level of a routes file.
type Document struct {
	Commands []Definition `yaml:"commands" json:"commands"`
}

// Registrar is the part of the router Register needs.
type Registrar interface {
	AddCommand(name string, handler any) (route.Route, error)
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSONC, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and parses the routes file at path.
func Load(path string) ([]Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	defs, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes a routes document and validates every definition.
func Parse(data []byte, format Format) ([]Definition, error) {
	var doc Document

	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing routes: %w", err)
		}
	case JSONC:
		stripped := jsonc.ToJSON(data)
		dec := json.NewDecoder(bytes.NewReader(stripped))
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing routes: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var errs []error
	for i := range doc.Commands {
		def := &doc.Commands[i]
		if err := def.prepare(); err != nil {
			errs = append(errs, fmt.Errorf("commands[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc.Commands, nil
}

func (d *Definition) prepare() error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return errors.New("name is required")
	}

	for k, v := range d.Arguments {
		d.Arguments[k] = normalize(v)
	}
	for k, v := range d.Options {
		d.Options[k] = normalize(v)
	}
	for k, v := range d.Flags {
		d.Flags[k] = normalize(v)
	}

	if d.Run == "" {
		return nil
	}
	tmpl, err := template.New(d.Name).Funcs(funcs).Option("missingkey=zero").Parse(d.Run)
	if err != nil {
		return fmt.Errorf("%s: run: %w", d.Name, err)
	}
	d.tmpl = tmpl
	return nil
}

// normalize turns JSON numbers into the int64 or float64 YAML would produce.
func normalize(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},
	"default": func(def string, v any) string {
		s := fmt.Sprint(v)
		if s == "" {
			return def
		}
		return s
	},
}

// Render executes the run template against rec. A definition without a
// run template renders nothing.
func (d Definition) Render(w io.Writer, rec input.Record) error {
	if d.tmpl == nil {
		return nil
	}
	if err := d.tmpl.Execute(w, rec); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	return nil
}

// Register adds every definition to reg in document order. handler builds
// the value stored with each route.
func Register(reg Registrar, defs []Definition, handler func(Definition) any) error {
	for i, def := range defs {
		var h any = def
		if handler != nil {
			h = handler(def)
		}

		rt, err := reg.AddCommand(def.Name, h)
		if err != nil {
			return fmt.Errorf("commands[%d]: %w", i, err)
		}
		decl := route.Declarations{Arguments: def.Arguments, Options: def.Options, Flags: def.Flags}
		if _, err := decl.Apply(rt); err != nil {
			return fmt.Errorf("commands[%d] %s: %w", i, def.Name, err)
		}
	}
	return nil
}
