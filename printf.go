package printf

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling. Every error returned by
// the package wraps exactly one of them.
var (
	ErrUnsupportedVerb = errors.New("unsupported verb")
	ErrBadArgument     = errors.New("bad argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Fprintf renders format with args and writes the result to w.
//
// Rendering stops at the first failing directive. Output produced before the
// failure has already been written to w when Fprintf returns.
func Fprintf(w io.Writer, format string, args ...any) error {
	if format == "" {
		return nil
	}
	bw := bufio.NewWriter(w)
	err := newState(bw, format, args).render()
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Sprintf renders format with args and returns the result. On failure the
// text rendered before the failing directive is returned with the error.
func Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	err := Fprintf(&sb, format, args...)
	return sb.String(), err
}

// Printf renders format with args to standard output.
func Printf(format string, args ...any) error {
	return Fprintf(os.Stdout, format, args...)
}

// Append renders format with args and appends the result to dst.
func Append(dst []byte, format string, args ...any) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	err := Fprintf(buf, format, args...)
	return buf.Bytes(), err
}
