package printf

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Kind is the runtime type tag of a [Value].
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindDouble
	KindBool
	KindChar
)

// String returns the type name printed by the T verb.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	default:
		return "invalid"
	}
}

// Value is one captured argument. The zero Value is invalid.
type Value struct {
	kind Kind

	// Only the field matching kind is meaningful.
	str     string
	num     int32
	dbl     float64
	boolean bool
	ch      rune

	// raw holds the original Go value of an invalid Value, for error messages.
	raw any
}

// String returns a Value of kind string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns a Value of kind int.
func Int(i int32) Value { return Value{kind: KindInt, num: i} }

// Double returns a Value of kind double.
func Double(f float64) Value { return Value{kind: KindDouble, dbl: f} }

// Bool returns a Value of kind bool.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Char returns a Value of kind char.
func Char(r rune) Value { return Value{kind: KindChar, ch: r} }

// ValueOf captures a Go value. Only string, int32, int (when it fits in 32
// bits), float64, bool, byte and Value are accepted; anything else yields an
// invalid Value which fails every verb that selects it.
func ValueOf(x any) Value {
	switch v := x.(type) {
	case Value:
		return v
	case string:
		return String(v)
	case int32:
		return Int(v)
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return Value{raw: x}
		}
		return Int(int32(v))
	case float64:
		return Double(v)
	case bool:
		return Bool(v)
	case byte:
		return Char(rune(v))
	default:
		return Value{raw: x}
	}
}

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds one of the accepted kinds.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Int returns the integer held by v.
func (v Value) Int() (int32, bool) { return v.num, v.kind == KindInt }

// Double returns the float held by v.
func (v Value) Double() (float64, bool) { return v.dbl, v.kind == KindDouble }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == KindBool }

// Char returns the character held by v.
func (v Value) Char() (rune, bool) { return v.ch, v.kind == KindChar }

// describe is used in error messages.
func (v Value) describe() string {
	if v.kind == KindInvalid {
		return fmt.Sprintf("%T", v.raw)
	}
	return v.kind.String()
}

const charTag = "!char"

// UnmarshalYAML decodes a scalar node into a Value, choosing the kind from
// the node tag. The custom tag !char selects a single-character Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrBadArgument, node.Line)
	}
	switch tag := node.ShortTag(); tag {
	case charTag:
		r, size := utf8.DecodeRuneInString(node.Value)
		if size == 0 || size != len(node.Value) {
			return fmt.Errorf("%w: line %d: %s needs exactly one character, got %q", ErrBadArgument, node.Line, charTag, node.Value)
		}
		*v = Char(r)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return fmt.Errorf("%w: line %d: %d does not fit in 32 bits", ErrBadArgument, node.Line, i)
		}
		*v = Int(int32(i))
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Double(f)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
	case "!!str":
		*v = String(node.Value)
	default:
		return fmt.Errorf("%w: line %d: unsupported tag %s", ErrBadArgument, node.Line, tag)
	}
	return nil
}

// MarshalYAML encodes v as a tagged scalar node.
func (v Value) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode}
	switch v.kind {
	case KindString:
		node.Tag, node.Value = "!!str", v.str
	case KindInt:
		node.Tag, node.Value = "!!int", strconv.FormatInt(int64(v.num), 10)
	case KindDouble:
		node.Tag, node.Value = "!!float", strconv.FormatFloat(v.dbl, 'g', -1, 64)
	case KindBool:
		node.Tag, node.Value = "!!bool", strconv.FormatBool(v.boolean)
	case KindChar:
		node.Tag, node.Value = charTag, string(v.ch)
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrBadArgument, v.describe())
	}
	return node, nil
}
