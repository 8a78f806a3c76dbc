package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/printf"
)

var errArgsShape = errors.New("arguments file must be a sequence of scalars or a sequence of sequences")

// parseArg converts one command-line argument into a Value. A leading
// "int:", "double:", "bool:", "char:" or "str:" selects the kind; anything
// else is a string.
func parseArg(s string) (printf.Value, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return printf.String(s), nil
	}
	switch kind {
	case "str":
		return printf.String(rest), nil
	case "int":
		n, err := strconv.ParseInt(rest, 0, 32)
		if err != nil {
			return printf.Value{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return printf.Int(int32(n)), nil
	case "double":
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return printf.Value{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return printf.Double(f), nil
	case "bool":
		b, err := strconv.ParseBool(rest)
		if err != nil {
			return printf.Value{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return printf.Bool(b), nil
	case "char":
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || size != len(rest) {
			return printf.Value{}, fmt.Errorf("argument %q: want exactly one character", s)
		}
		return printf.Char(r), nil
	default:
		return printf.String(s), nil
	}
}

func parseArgs(raw []string) ([]any, error) {
	out := make([]any, len(raw))
	for i, s := range raw {
		v, err := parseArg(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// loadTuples reads argument tuples from a YAML document. A flat sequence is
// a single tuple; a sequence of sequences yields one tuple per entry.
func loadTuples(r io.Reader) ([][]any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %w", root.Line, errArgsShape)
	}
	if len(root.Content) == 0 {
		return [][]any{{}}, nil
	}
	if root.Content[0].Kind != yaml.SequenceNode {
		tuple, err := decodeTuple(root)
		if err != nil {
			return nil, err
		}
		return [][]any{tuple}, nil
	}
	tuples := make([][]any, 0, len(root.Content))
	for _, node := range root.Content {
		if node.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: %w", node.Line, errArgsShape)
		}
		tuple, err := decodeTuple(node)
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, tuple)
	}
	return tuples, nil
}

func decodeTuple(seq *yaml.Node) ([]any, error) {
	tuple := make([]any, 0, len(seq.Content))
	for _, node := range seq.Content {
		var v printf.Value
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		tuple = append(tuple, v)
	}
	return tuple, nil
}
