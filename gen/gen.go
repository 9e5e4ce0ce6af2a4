// Interrupt line identifier generation
// Turns a named line list (YAML) into Go source: dense core.Line
// constants, a name table, and the platform vector number for each
// line. The generated file is what application code and the target's
// vector wiring share, playing the role an SVD-derived definition plays
// on other stacks.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"gopkg.in/yaml.v3"

	"irqscope/core"
)

// LineDef describes one interrupt line to generate.
type LineDef struct {
	// Name becomes the Go constant name; must be a valid exported
	// identifier.
	Name string `yaml:"name"`

	// Vector is the platform's hardware vector/IRQ number for the line.
	Vector int `yaml:"vector"`
}

// Config is the generator input, typically loaded from a YAML file.
type Config struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`

	Lines []LineDef `yaml:"lines"`
}

// ParseConfig decodes and validates a YAML line list.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse line list: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Package == "" {
		return fmt.Errorf("line list missing package name")
	}
	if len(c.Lines) == 0 {
		return fmt.Errorf("line list defines no interrupt lines")
	}
	if len(c.Lines) > core.MaxLines {
		return fmt.Errorf("line list defines %d lines, table capacity is %d", len(c.Lines), core.MaxLines)
	}

	seenName := make(map[string]bool)
	seenVector := make(map[int]bool)
	for i, l := range c.Lines {
		if !validIdentifier(l.Name) {
			return fmt.Errorf("line %d: %q is not a valid exported identifier", i, l.Name)
		}
		if seenName[l.Name] {
			return fmt.Errorf("duplicate line name %q", l.Name)
		}
		seenName[l.Name] = true
		if l.Vector < 0 {
			return fmt.Errorf("line %q: negative vector %d", l.Name, l.Vector)
		}
		if seenVector[l.Vector] {
			return fmt.Errorf("line %q: vector %d already bound", l.Name, l.Vector)
		}
		seenVector[l.Vector] = true
	}
	return nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	// Exported so both application code and the target binding can use it
	return s[0] >= 'A' && s[0] <= 'Z'
}

var fileTemplate = template.Must(template.New("lines").Parse(`// Code generated by irqgen. DO NOT EDIT.

package {{.Package}}

import "irqscope/core"

// Interrupt lines known to this board.
const (
{{- range $i, $l := .Lines}}
	{{$l.Name}} core.Line = {{$i}}
{{- end}}
)

// LineCount is the number of generated interrupt lines.
const LineCount = {{len .Lines}}

var lineNames = [LineCount]string{
{{- range .Lines}}
	"{{.Name}}",
{{- end}}
}

var lineVectors = [LineCount]int{
{{- range .Lines}}
	{{.Vector}},
{{- end}}
}

// LineName returns the symbolic name of line, or "" if unknown.
func LineName(line core.Line) string {
	if int(line) >= LineCount {
		return ""
	}
	return lineNames[line]
}

// LineVector returns the platform vector number bound to line.
func LineVector(line core.Line) int {
	if int(line) >= LineCount {
		return -1
	}
	return lineVectors[line]
}

// EachLine calls fn for every generated line in ascending order. The
// target binding uses this to point each hardware vector at the core
// dispatch trampoline.
func EachLine(fn func(line core.Line, vector int)) {
	for i := 0; i < LineCount; i++ {
		fn(core.Line(i), lineVectors[i])
	}
}
`))

// Generate renders cfg into gofmt-formatted Go source.
func Generate(cfg *Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to render line table: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}
	return src, nil
}
