// Package printf renders printf-style templates against a list of typed
// arguments.
//
// A template is literal text interspersed with directives introduced by '%'.
// Each directive selects one argument and a verb that chooses how the
// argument is rendered. The central entry points are [Fprintf] and
// [Sprintf]; [Printf] writes to standard output and [Append] appends to a
// byte slice.
//
//	s, err := printf.Sprintf("%[2]s-%[1]s", "a", "b") // "b-a"
//
// # Directive Syntax
//
// A directive has the form
//
//	%[index][#][-][ |0][width][.precision][+]verb
//
// The parts are read strictly in that order:
//
//   - [n] selects argument n (1-based). Without it the next argument in
//     sequence is used.
//   - '#' requests an alternate form (base prefix, numeric booleans).
//   - '-' left-justifies the field within width.
//   - a run of spaces pads with spaces; otherwise a run of zeros pads
//     numeric verbs with zeros after the sign or prefix.
//   - width is the minimum field width in display columns.
//   - precision is the number of fractional digits of f, p and e. When it is
//     absent or exactly 0, [DefaultPrecision] is used.
//   - '+' forces a sign on non-negative numbers, for every numeric verb.
//
// "%%" renders a single '%'.
//
// # Argument Indexing
//
// Directives without an explicit index consume arguments in order. An
// explicit [n] does not move that sequence: in "%[3]d %d %d" the second and
// third directives select arguments 1 and 2.
//
// # Verbs
//
//   - c: a char
//   - s: a string
//   - q: a string in double quotes, with '"' and '\' escaped
//   - d: an int in base 10
//   - b: an int as 32 binary digits; flags other than '+' and width are ignored
//   - o: an int in base 8 ('#' adds "0")
//   - x: an int in base 16 ('#' adds "0x")
//   - f: a double or int in fixed-point notation
//   - p: a double or int multiplied by 100, followed by '%'
//   - e: a double or int in scientific notation
//   - t: a bool as true/false ('#' renders 1/0)
//   - v: any value using its natural verb with default flags
//   - T: the type name of the value: string, int, double, bool or char
//
// Negative ints are printed by o, x and b as their 32-bit two's complement.
// Infinities and NaN render as inf and nan.
//
// # Arguments
//
// Arguments are captured with [ValueOf]. Accepted Go types are string,
// int32, int (within 32 bits), float64, bool and byte (a char). A [Value]
// built with [String], [Int], [Double], [Bool] or [Char] is used as is.
// Any other type only fails when a directive selects it. Values also
// decode from YAML scalars; the tag !char marks a single character.
//
// # Streaming
//
// [FprintfIter] and [FprintfChan] render one template against a sequence of
// argument tuples.
//
// # Errors
//
// Rendering stops at the first failing directive. Output produced before it
// stays written to the destination. Every error wraps one of:
//
//   - [ErrUnsupportedVerb]: unknown or missing verb
//   - [ErrBadArgument]: argument type does not match the verb, or the
//     index syntax is malformed
//   - [ErrIndexOutOfRange]: the selected argument does not exist
//
// Callers that need all-or-nothing output render to a buffer first.
package printf
