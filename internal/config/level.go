package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Errors reported while parsing a level document.
var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrNotMapping    = errors.New("document is not a mapping")
	ErrMissingField  = errors.New("missing field")
	ErrWrongType     = errors.New("wrong type")
	ErrOutOfRange    = errors.New("value out of range")
)

// FieldError describes a problem with a single field of a level document.
type FieldError struct {
	Level string // Level name or file path
	Field string // Dotted path, e.g. "ball.radius"
	Err   error  // One of ErrMissingField, ErrWrongType, ErrOutOfRange
	Got   string // Offending YAML kind or value, if any
}

func (e *FieldError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("level %s: %s: %v (got %s)", e.Level, e.Field, e.Err, e.Got)
	}
	return fmt.Sprintf("level %s: %s: %v", e.Level, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseLevel parses and validates a level document.
// Every field is checked; all field errors are returned joined together.
func ParseLevel(name string, data []byte) (Level, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Level{}, fmt.Errorf("level %s: invalid yaml: %w", name, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", name, ErrEmptyDocument)
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return Level{}, fmt.Errorf("level %s: %w", name, ErrEmptyDocument)
	}
	if root.Kind != yaml.MappingNode {
		return Level{}, fmt.Errorf("level %s: %w: found %s", name, ErrNotMapping, kindName(root))
	}

	p := &levelParser{name: name}
	lvl := Level{Name: name}

	if w := p.section(root, "window"); w != nil {
		lvl.Window.Width = p.intField(w, "window", "width")
		lvl.Window.Height = p.intField(w, "window", "height")
		lvl.Window.Background = p.stringField(w, "window", "background")
	}
	if pd := p.section(root, "paddle"); pd != nil {
		lvl.Paddle.Width = p.intField(pd, "paddle", "width")
		lvl.Paddle.Height = p.intField(pd, "paddle", "height")
		lvl.Paddle.Speed = p.intField(pd, "paddle", "speed")
	}
	if b := p.section(root, "ball"); b != nil {
		lvl.Ball.Radius = p.intField(b, "ball", "radius")
		lvl.Ball.Speed = p.intField(b, "ball", "speed")
	}
	if bl := p.section(root, "block"); bl != nil {
		lvl.Block.PadW = p.intField(bl, "block", "pad_w")
		lvl.Block.PadH = p.intField(bl, "block", "pad_h")
		lvl.Block.BlockW = p.intField(bl, "block", "block_w")
		lvl.Block.BlockH = p.intField(bl, "block", "block_h")
		lvl.Block.N = p.intField(bl, "block", "n")
		lvl.Block.M = p.intField(bl, "block", "m")
	}

	if len(p.errs) == 0 {
		p.validateRanges(lvl)
	}
	if len(p.errs) > 0 {
		return Level{}, errors.Join(p.errs...)
	}
	return lvl, nil
}

// levelParser accumulates field errors while walking the document.
type levelParser struct {
	name string
	errs []error
}

func (p *levelParser) fail(field string, err error, got string) {
	p.errs = append(p.errs, &FieldError{Level: p.name, Field: field, Err: err, Got: got})
}

// section returns the mapping stored under key, or nil after recording an error.
func (p *levelParser) section(root *yaml.Node, key string) *yaml.Node {
	node := lookup(root, key)
	if node == nil {
		p.fail(key, ErrMissingField, "")
		return nil
	}
	if node.Kind != yaml.MappingNode {
		p.fail(key, ErrWrongType, kindName(node))
		return nil
	}
	return node
}

func (p *levelParser) intField(section *yaml.Node, sectionName, key string) int {
	field := sectionName + "." + key
	node := lookup(section, key)
	if node == nil {
		p.fail(field, ErrMissingField, "")
		return 0
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" {
		p.fail(field, ErrWrongType, kindName(node))
		return 0
	}
	var v int
	if err := node.Decode(&v); err != nil {
		p.fail(field, ErrWrongType, node.Value)
		return 0
	}
	return v
}

func (p *levelParser) stringField(section *yaml.Node, sectionName, key string) string {
	field := sectionName + "." + key
	node := lookup(section, key)
	if node == nil {
		p.fail(field, ErrMissingField, "")
		return ""
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		p.fail(field, ErrWrongType, kindName(node))
		return ""
	}
	return node.Value
}

// validateRanges rejects values the simulation cannot run with.
func (p *levelParser) validateRanges(lvl Level) {
	positive := []struct {
		field string
		value int
	}{
		{"window.width", lvl.Window.Width},
		{"window.height", lvl.Window.Height},
		{"paddle.width", lvl.Paddle.Width},
		{"paddle.height", lvl.Paddle.Height},
		{"paddle.speed", lvl.Paddle.Speed},
		{"ball.radius", lvl.Ball.Radius},
		{"ball.speed", lvl.Ball.Speed},
		{"block.block_w", lvl.Block.BlockW},
		{"block.block_h", lvl.Block.BlockH},
		{"block.n", lvl.Block.N},
		{"block.m", lvl.Block.M},
	}
	for _, f := range positive {
		if f.value <= 0 {
			p.fail(f.field, ErrOutOfRange, fmt.Sprintf("%d, want > 0", f.value))
		}
	}

	if lvl.Block.PadW < 0 {
		p.fail("block.pad_w", ErrOutOfRange, fmt.Sprintf("%d, want >= 0", lvl.Block.PadW))
	}
	if lvl.Block.PadH < 0 {
		p.fail("block.pad_h", ErrOutOfRange, fmt.Sprintf("%d, want >= 0", lvl.Block.PadH))
	}
	if lvl.Paddle.Width > lvl.Window.Width {
		p.fail("paddle.width", ErrOutOfRange, fmt.Sprintf("%d, wider than window", lvl.Paddle.Width))
	}
}

// lookup finds the value node for key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// kindName describes a node for error messages.
func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int":
			return "integer " + n.Value
		case "!!float":
			return "float " + n.Value
		case "!!bool":
			return "bool " + n.Value
		case "!!null":
			return "null"
		case "!!str":
			return fmt.Sprintf("string %q", n.Value)
		}
		return n.Tag + " " + n.Value
	default:
		return "unknown"
	}
}
