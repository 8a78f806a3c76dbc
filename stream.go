package printf

import (
	"fmt"
	"io"
	"iter"
)

// FprintfIter renders format once for every argument tuple produced by seq,
// writing each rendering to w as it arrives. Each tuple gets its own render
// state, so the auto-index counter starts over for every tuple. Iteration
// stops at the first failure.
func FprintfIter(w io.Writer, format string, seq iter.Seq[[]any]) error {
	var (
		n   int
		err error
	)
	seq(func(args []any) bool {
		if ferr := Fprintf(w, format, args...); ferr != nil {
			err = fmt.Errorf("tuple %d: %w", n, ferr)
			return false
		}
		n++
		return true
	})
	return err
}

// FprintfChan renders format once for every argument tuple received from ch.
// It is a thin wrapper around [FprintfIter]. After a failure ch is no longer
// read; the sender must not rely on it being drained.
func FprintfChan(w io.Writer, format string, ch <-chan []any) error {
	return FprintfIter(w, format, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
