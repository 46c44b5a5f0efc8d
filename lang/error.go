package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput = NewError("failed to read input")
	ErrListEval  = NewError("list cannot be evaluated directly")
	ErrBadNode   = NewError("invalid node kind")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches errors sharing the same base message, so derivatives built
// with Wrap or With still compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LexError reports a tokenization failure. It is terminal for the current
// run; no partial token sequence is returned alongside it.
type LexError struct {
	Pos    int    // byte offset of the offending character
	Char   rune   // the offending character
	Source string // the original source input
}

// Error implements the error interface.
func (e *LexError) Error() string {
	var buf strings.Builder

	buf.WriteString("tokenization failure at character ")
	buf.WriteString(strconv.QuoteRune(e.Char))

	if e.Source != "" {
		buf.WriteString(":\n")
		buf.WriteString(snippet(e.Source, e.Pos))
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *LexError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "tokenization failure"),
		slog.Int("pos", e.Pos),
		slog.String("char", string(e.Char)),
	)
}

// SyntaxError reports that no grammar alternative matched at some token,
// or that tokens remained after a complete top-level parse. A nil Token
// indicates end of input.
type SyntaxError struct {
	Token  *Token // the offending token, or nil at end of input
	Source string // the original source input, if known
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return "failed to treeify tokens at end of input"
	}

	var buf strings.Builder

	buf.WriteString("failed to treeify tokens around token ")
	buf.WriteString(e.Token.String())

	if e.Source != "" {
		buf.WriteString(":\n")
		buf.WriteString(snippet(e.Source, e.Token.Pos))
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("error", "syntax error")}

	if e.Token != nil {
		attrs = append(attrs,
			slog.String("token", e.Token.String()),
			slog.Int("pos", e.Token.Pos),
		)
	}

	return slog.GroupValue(attrs...)
}

// snippet renders the source line containing the given byte offset with a
// caret marker pointing at the offending column.
func snippet(source string, offset int) string {
	if offset > len(source) {
		offset = len(source)
	}

	// Derive line and column from the byte offset.
	line, col := 1, 1

	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	lines := strings.Split(source, "\n")

	var buf strings.Builder

	buf.WriteString("  ")
	buf.WriteString(strconv.Itoa(line))
	buf.WriteString(" | ")

	if line > 0 && line <= len(lines) {
		buf.WriteString(lines[line-1])
	}

	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", len(strconv.Itoa(line))+5)
	if col > 0 {
		padding += strings.Repeat(" ", col-1)
	}

	buf.WriteString(padding + "^")

	return buf.String()
}
