package contract

import (
	"strconv"

	"patr/internal/suite"
)

// Kind is the runtime type of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindDouble
	KindString
	KindArray
	KindObject
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Tag returns the type tag a value of this kind satisfies. Objects and arrays
// both satisfy "array".
func (k Kind) Tag() suite.TypeTag {
	switch k {
	case KindNull:
		return suite.TagNull
	case KindBoolean:
		return suite.TagBoolean
	case KindInteger:
		return suite.TagInteger
	case KindDouble:
		return suite.TagDouble
	case KindString:
		return suite.TagString
	case KindArray, KindObject:
		return suite.TagArray
	default:
		return ""
	}
}

// Member is a key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value. The zero Value is JSON null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	keys  []string
	props map[string]Value
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds a JSON array from items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object builds a JSON object. A repeated key keeps its first position and its last value.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, props: make(map[string]Value, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	if _, exists := v.props[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.props[key] = val
}

// Kind returns the runtime type of v.
func (v Value) Kind() Kind { return v.kind }

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// Len returns the number of elements or members; zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.keys)
	}
	return 0
}

// Keys returns object keys in document order.
func (v Value) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Lookup returns the member called key of an object, or the element at the
// decimal index key of an array.
func (v Value) Lookup(key string) (Value, bool) {
	switch v.kind {
	case KindObject:
		val, ok := v.props[key]
		return val, ok
	case KindArray:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(v.items) || strconv.Itoa(idx) != key {
			return Value{}, false
		}
		return v.items[idx], true
	}
	return Value{}, false
}

func (v Value) AsBool() bool { return v.b }
func (v Value) AsInt() int64 { return v.i }
func (v Value) AsDouble() float64 { return v.f }
func (v Value) AsString() string { return v.s }
