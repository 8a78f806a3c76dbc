package printf

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Verb is the terminal character of a directive.
type Verb byte

const (
	VerbChar     Verb = 'c'
	VerbString   Verb = 's'
	VerbQuoted   Verb = 'q'
	VerbDecimal  Verb = 'd'
	VerbBinary   Verb = 'b'
	VerbOctal    Verb = 'o'
	VerbHex      Verb = 'x'
	VerbFixed    Verb = 'f'
	VerbPercent  Verb = 'p'
	VerbExponent Verb = 'e'
	VerbBool     Verb = 't'
	VerbValue    Verb = 'v'
	VerbType     Verb = 'T'
)

var verbs = []Verb{
	VerbChar, VerbString, VerbQuoted, VerbDecimal, VerbBinary, VerbOctal, VerbHex,
	VerbFixed, VerbPercent, VerbExponent, VerbBool, VerbValue, VerbType,
}

// String returns the verb character.
func (v Verb) String() string { return string(rune(v)) }

// Verbs returns all supported verbs.
func Verbs() []Verb {
	out := make([]Verb, len(verbs))
	copy(out, verbs)
	return out
}

// IsSupported reports whether v is a known verb.
func IsSupported(v Verb) bool {
	return slices.Contains(verbs, v)
}

// numeric reports whether zero padding applies to the verb.
func (v Verb) numeric() bool {
	switch v {
	case VerbDecimal, VerbOctal, VerbHex, VerbFixed, VerbPercent, VerbExponent:
		return true
	}
	return false
}

// rule renders val for spec. It returns the sign/prefix part and the body
// separately so zero padding can go between them.
type rule func(spec specifier, val Value) (prefix, body string, err error)

var rules map[Verb]rule

func init() {
	rules = map[Verb]rule{
		VerbChar:     formatChar,
		VerbString:   formatString,
		VerbQuoted:   formatQuoted,
		VerbDecimal:  formatInt(10),
		VerbOctal:    formatInt(8),
		VerbHex:      formatInt(16),
		VerbFixed:    formatDouble,
		VerbPercent:  formatDouble,
		VerbExponent: formatDouble,
		VerbBool:     formatBool,
		VerbValue:    formatValue,
		VerbType:     formatType,
	}
}

func (s *state) dispatch(spec specifier, val Value) error {
	if spec.verb == VerbBinary {
		n, ok := val.Int()
		if !ok {
			return badArgument(spec.verb, val)
		}
		if spec.sign && n >= 0 {
			_ = s.w.WriteByte(plus)
		}
		_, _ = s.w.WriteString(binary32(n))
		return nil
	}
	fn, ok := rules[spec.verb]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedVerb, rune(spec.verb))
	}
	prefix, body, err := fn(spec, val)
	if err != nil {
		return err
	}
	s.pad(spec, val, prefix, body)
	return nil
}

func (s *state) pad(spec specifier, val Value, prefix, body string) {
	fill := spec.width - runewidth.StringWidth(prefix) - runewidth.StringWidth(body)
	if fill <= 0 {
		_, _ = s.w.WriteString(prefix)
		_, _ = s.w.WriteString(body)
		return
	}
	switch {
	case spec.left:
		_, _ = s.w.WriteString(prefix)
		_, _ = s.w.WriteString(body)
		s.fill(spaces, fill)
	case spec.zeros && zeroPaddable(spec.verb, val):
		_, _ = s.w.WriteString(prefix)
		s.fill(zeros, fill)
		_, _ = s.w.WriteString(body)
	default:
		s.fill(spaces, fill)
		_, _ = s.w.WriteString(prefix)
		_, _ = s.w.WriteString(body)
	}
}

const padChunk = 64

var (
	spaces = strings.Repeat(" ", padChunk)
	zeros  = strings.Repeat("0", padChunk)
)

// fill writes n bytes of run without allocating n bytes at once.
func (s *state) fill(run string, n int) {
	for n > 0 {
		k := min(n, len(run))
		_, _ = s.w.WriteString(run[:k])
		n -= k
	}
}

func zeroPaddable(v Verb, val Value) bool {
	if v == VerbValue {
		k := val.Kind()
		return k == KindInt || k == KindDouble
	}
	return v.numeric()
}

func badArgument(v Verb, val Value) error {
	return fmt.Errorf("%w: %%%c given %s", ErrBadArgument, rune(v), val.describe())
}

func formatChar(spec specifier, val Value) (string, string, error) {
	c, ok := val.Char()
	if !ok {
		return "", "", badArgument(spec.verb, val)
	}
	return "", string(c), nil
}

func formatString(spec specifier, val Value) (string, string, error) {
	str, ok := val.Str()
	if !ok {
		return "", "", badArgument(spec.verb, val)
	}
	return "", str, nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func formatQuoted(spec specifier, val Value) (string, string, error) {
	str, ok := val.Str()
	if !ok {
		return "", "", badArgument(spec.verb, val)
	}
	return "", `"` + quoteEscaper.Replace(str) + `"`, nil
}

func formatInt(base int) rule {
	return func(spec specifier, val Value) (string, string, error) {
		n, ok := val.Int()
		if !ok {
			return "", "", badArgument(spec.verb, val)
		}
		if base == 10 {
			if n < 0 {
				return "-", strconv.FormatInt(-int64(n), 10), nil
			}
			if spec.sign {
				return "+", strconv.FormatInt(int64(n), 10), nil
			}
			return "", strconv.FormatInt(int64(n), 10), nil
		}
		// Octal and hex print the two's complement bit pattern.
		u := uint32(n)
		prefix := ""
		if spec.sign && n >= 0 {
			prefix = "+"
		}
		if spec.sharp && u != 0 {
			prefix += "0"
			if base == 16 {
				prefix += "x"
			}
		}
		return prefix, strconv.FormatUint(uint64(u), base), nil
	}
}

func binary32(n int32) string {
	out := strconv.FormatUint(uint64(uint32(n)), 2)
	return strings.Repeat("0", 32-len(out)) + out
}

func formatDouble(spec specifier, val Value) (string, string, error) {
	var f float64
	switch val.Kind() {
	case KindDouble:
		f, _ = val.Double()
	case KindInt:
		n, _ := val.Int()
		f = float64(n)
	default:
		return "", "", badArgument(spec.verb, val)
	}
	if spec.verb == VerbPercent {
		f *= 100
	}

	var prefix string
	switch {
	case math.Signbit(f) && !math.IsNaN(f):
		prefix, f = "-", -f
	case spec.sign && !math.IsNaN(f):
		prefix = "+"
	}

	var body string
	switch {
	case math.IsInf(f, 0):
		body = "inf"
	case math.IsNaN(f):
		body = "nan"
	case spec.verb == VerbExponent:
		body = strconv.FormatFloat(f, 'e', spec.prec, 64)
	default:
		body = strconv.FormatFloat(f, 'f', spec.prec, 64)
	}
	if spec.verb == VerbPercent {
		body += "%"
	}
	return prefix, body, nil
}

func formatBool(spec specifier, val Value) (string, string, error) {
	b, ok := val.Bool()
	if !ok {
		return "", "", badArgument(spec.verb, val)
	}
	if spec.sharp {
		if b {
			return "", "1", nil
		}
		return "", "0", nil
	}
	return "", strconv.FormatBool(b), nil
}

var valueVerbs = map[Kind]Verb{
	KindString: VerbString,
	KindInt:    VerbDecimal,
	KindDouble: VerbFixed,
	KindBool:   VerbBool,
	KindChar:   VerbChar,
}

func formatValue(spec specifier, val Value) (string, string, error) {
	v, ok := valueVerbs[val.Kind()]
	if !ok {
		return "", "", badArgument(spec.verb, val)
	}
	plain := newSpecifier()
	plain.verb = v
	return rules[v](plain, val)
}

func formatType(spec specifier, val Value) (string, string, error) {
	if !val.IsValid() {
		return "", "", badArgument(spec.verb, val)
	}
	return "", val.Kind().String(), nil
}
