package suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TypeTag names the JSON type a required field must have.
type TypeTag string

const (
	TagString  TypeTag = "string"
	TagInteger TypeTag = "integer"
	TagDouble  TypeTag = "double"
	TagBoolean TypeTag = "boolean"
	// TagArray matches both JSON arrays and JSON objects.
	TagArray TypeTag = "array"
	TagNull  TypeTag = "null"
)

// Valid reports whether t is one of the known type tags.
func (t TypeTag) Valid() bool {
	switch t {
	case TagString, TagInteger, TagDouble, TagBoolean, TagArray, TagNull:
		return true
	}
	return false
}

// Field is one entry of a RequiredSpec. Exactly one of Type and Nested is set.
type Field struct {
	Name   string
	Type   TypeTag
	Nested *RequiredSpec
}

// IsNested reports whether the field requires a nested container.
func (f Field) IsNested() bool {
	return f.Nested != nil
}

// RequiredSpec is an ordered mapping from field name to either a type tag or
// a nested RequiredSpec. When the spec is written as a JSON/YAML array, the
// field names are the element indexes ("0", "1", ...).
type RequiredSpec struct {
	Fields []Field
}

// NewSpec builds a RequiredSpec from fields, mostly useful in tests and code
// that constructs suites without a file.
func NewSpec(fields ...Field) *RequiredSpec {
	return &RequiredSpec{Fields: fields}
}

// Tag is shorthand for a primitive Field.
func Tag(name string, t TypeTag) Field {
	return Field{Name: name, Type: t}
}

// Nest is shorthand for a nested Field.
func Nest(name string, spec *RequiredSpec) Field {
	return Field{Name: name, Nested: spec}
}

// Len returns the number of fields; a nil spec has none.
func (s *RequiredSpec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// UnmarshalJSON decodes a spec while keeping the key order of the source.
func (s *RequiredSpec) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	parsed, err := decodeSpecJSON(dec)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func decodeSpecJSON(dec *json.Decoder) (*RequiredSpec, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil, fmt.Errorf("fields must be an object or an array, got %v", tok)
	}

	spec := &RequiredSpec{Fields: []Field{}}
	for i := 0; dec.More(); i++ {
		name := strconv.Itoa(i)
		if delim == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name = keyTok.(string)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		field, err := decodeFieldJSON(name, raw)
		if err != nil {
			return nil, err
		}
		spec.Fields = append(spec.Fields, field)
	}

	// consume the closing delimiter
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return spec, nil
}

func decodeFieldJSON(name string, raw json.RawMessage) (Field, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Field{}, fmt.Errorf("field %q has no value", name)
	}

	switch trimmed[0] {
	case '"':
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return Field{}, fmt.Errorf("field %q: %w", name, err)
		}
		return Tag(name, TypeTag(tag)), nil
	case '{', '[':
		nested, err := decodeSpecJSON(json.NewDecoder(bytes.NewReader(trimmed)))
		if err != nil {
			return Field{}, fmt.Errorf("field %q: %w", name, err)
		}
		return Nest(name, nested), nil
	default:
		return Field{}, fmt.Errorf("field %q must be a type name or a nested object, got %s", name, trimmed)
	}
}

// UnmarshalYAML decodes a spec from a YAML mapping or sequence, keeping order.
func (s *RequiredSpec) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := decodeSpecYAML(value)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func decodeSpecYAML(node *yaml.Node) (*RequiredSpec, error) {
	spec := &RequiredSpec{Fields: []Field{}}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			field, err := decodeFieldYAML(node.Content[i].Value, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			spec.Fields = append(spec.Fields, field)
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			field, err := decodeFieldYAML(strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			spec.Fields = append(spec.Fields, field)
		}
	default:
		return nil, fmt.Errorf("line %d: fields must be a mapping or a sequence", node.Line)
	}

	return spec, nil
}

func decodeFieldYAML(name string, node *yaml.Node) (Field, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Tag(name, TypeTag(node.Value)), nil
	case yaml.MappingNode, yaml.SequenceNode:
		nested, err := decodeSpecYAML(node)
		if err != nil {
			return Field{}, fmt.Errorf("field %q: %w", name, err)
		}
		return Nest(name, nested), nil
	default:
		return Field{}, fmt.Errorf("line %d: field %q must be a type name or a nested mapping", node.Line, name)
	}
}
