package printf

import (
	"bufio"
	"fmt"
	"strconv"
)

// DefaultPrecision is the number of fractional digits used by the floating
// point verbs when no precision is given. An explicit precision of 0 also
// selects it.
const DefaultPrecision = 6

const (
	percent = '%'
	lsquare = '['
	rsquare = ']'
	dot     = '.'
	pound   = '#'
	space   = ' '
	plus    = '+'
	minus   = '-'
	zero    = '0'
)

// specifier is the parsed form of one %...verb directive.
// syntax: %[[index]][#][-][ |0][width][.prec][+]verb
type specifier struct {
	arg   int
	width int
	prec  int

	sharp bool
	sign  bool
	space bool
	zeros bool
	left  bool

	verb Verb
}

func newSpecifier() specifier {
	return specifier{prec: DefaultPrecision}
}

// state is the per-call render state. It is never shared between calls.
type state struct {
	w      *bufio.Writer
	format string
	args   []Value
	// pos is the byte offset of the next unread template byte.
	pos int
	// next is the auto-index counter. Only directives without an explicit
	// [n] read and advance it.
	next int
}

func newState(w *bufio.Writer, format string, args []any) *state {
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = ValueOf(a)
	}
	return &state{w: w, format: format, args: values}
}

func (s *state) render() error {
	for s.pos < len(s.format) {
		if !s.scanText() {
			break
		}
		start := s.pos - 1
		spec, err := s.parseSpecifier()
		if err != nil {
			return fmt.Errorf("%w at offset %d", err, start)
		}
		if spec.arg < 0 || spec.arg >= len(s.args) {
			return fmt.Errorf("%w: argument %d of %d at offset %d", ErrIndexOutOfRange, spec.arg+1, len(s.args), start)
		}
		if err := s.dispatch(spec, s.args[spec.arg]); err != nil {
			return fmt.Errorf("%w at offset %d", err, start)
		}
	}
	return nil
}

// scanText copies literal text up to the next unescaped '%' and reports
// whether one was found. On success pos is just past the '%'.
func (s *state) scanText() bool {
	prev := s.pos
	for s.pos < len(s.format) {
		if s.format[s.pos] != percent {
			s.pos++
			continue
		}
		if s.pos+1 < len(s.format) && s.format[s.pos+1] == percent {
			// Emit the run including one '%', drop the second.
			_, _ = s.w.WriteString(s.format[prev : s.pos+1])
			s.pos += 2
			prev = s.pos
			continue
		}
		_, _ = s.w.WriteString(s.format[prev:s.pos])
		s.pos++
		return true
	}
	_, _ = s.w.WriteString(s.format[prev:s.pos])
	return false
}

func (s *state) peek() (byte, bool) {
	if s.pos >= len(s.format) {
		return 0, false
	}
	return s.format[s.pos], true
}

func (s *state) accept(c byte) bool {
	if b, ok := s.peek(); ok && b == c {
		s.pos++
		return true
	}
	return false
}

func (s *state) skip(c byte) {
	for s.accept(c) {
	}
}

func (s *state) digits() string {
	start := s.pos
	for s.pos < len(s.format) && isDigit(s.format[s.pos]) {
		s.pos++
	}
	return s.format[start:s.pos]
}

func (s *state) parseSpecifier() (specifier, error) {
	spec := newSpecifier()
	if err := s.parseIndex(&spec); err != nil {
		return spec, err
	}
	spec.sharp = s.accept(pound)
	spec.left = s.accept(minus)
	if b, _ := s.peek(); b == space {
		spec.space = true
		s.skip(space)
	}
	if b, _ := s.peek(); !spec.space && b == zero {
		spec.zeros = true
		s.skip(zero)
	}
	if err := s.parseWidth(&spec); err != nil {
		return spec, err
	}
	if err := s.parsePrecision(&spec); err != nil {
		return spec, err
	}
	spec.sign = s.accept(plus)

	b, ok := s.peek()
	if !ok {
		return spec, fmt.Errorf("%w: missing verb", ErrUnsupportedVerb)
	}
	s.pos++
	spec.verb = Verb(b)
	return spec, nil
}

func (s *state) parseIndex(spec *specifier) error {
	if !s.accept(lsquare) {
		spec.arg = s.next
		s.next++
		return nil
	}
	start := s.pos
	for {
		b, ok := s.peek()
		if !ok {
			return fmt.Errorf("%w: unterminated index %q", ErrBadArgument, s.format[start-1:])
		}
		if b == rsquare {
			break
		}
		if !isDigit(b) {
			return fmt.Errorf("%w: invalid character %q in index", ErrBadArgument, b)
		}
		s.pos++
	}
	text := s.format[start:s.pos]
	s.pos++
	if text == "" {
		return fmt.Errorf("%w: empty index", ErrBadArgument)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%w: index %q: %w", ErrIndexOutOfRange, text, err)
	}
	spec.arg = n - 1
	return nil
}

func (s *state) parseWidth(spec *specifier) error {
	text := s.digits()
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%w: width %q: %w", ErrBadArgument, text, err)
	}
	spec.width = n
	return nil
}

func (s *state) parsePrecision(spec *specifier) error {
	if !s.accept(dot) {
		return nil
	}
	text := s.digits()
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%w: precision %q: %w", ErrBadArgument, text, err)
	}
	if n != 0 {
		spec.prec = n
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
