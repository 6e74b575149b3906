package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value. A non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object or array in raw model output into
// T. It tolerates a surrounding markdown fence and chatter before or after
// the value. It also tolerates // and /* */ comments and numbers written
// without a leading zero. A non-nil validator runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstJSONValue(unfence(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}

	var out T
	if err := json.Unmarshal([]byte(repairJSON(block)), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// unfence returns the body of the first ``` block in s, or s itself when it
// has no multi-line fence.
func unfence(s string) string {
	open := strings.Index(s, "```")
	if open < 0 {
		return s
	}
	body := s[open+3:]
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return s
	}
	body = body[nl+1:] // drop the info string, e.g. "json"
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return body
}

// jsonLexer follows string literals one byte at a time so the scanners below
// only react to structural characters.
type jsonLexer struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it sits outside every string literal.
// Quote characters themselves count as string content.
func (l *jsonLexer) step(c byte) bool {
	switch {
	case l.escaped:
		l.escaped = false
	case l.inString:
		if c == '\\' {
			l.escaped = true
		} else if c == '"' {
			l.inString = false
		}
	case c == '"':
		l.inString = true
	default:
		return true
	}
	return false
}

// firstJSONValue returns the first balanced {...} or [...] in s, or "" when
// none closes.
func firstJSONValue(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	var lx jsonLexer
	depth := 0
	for i := start; i < len(s); i++ {
		if !lx.step(s[i]) {
			continue
		}
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// repairJSON drops comments and turns ".5" into "0.5" outside strings.
func repairJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var lx jsonLexer
	var prev byte // last non-space byte written
	emit := func(c byte) {
		b.WriteByte(c)
		if !isSpace(c) {
			prev = c
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !lx.step(c) {
			emit(c)
			continue
		}
		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return b.String()
				}
				i += end + 3
				continue
			}
		}
		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && (prev == 0 || strings.IndexByte(":,[-", prev) >= 0) {
			emit('0')
		}
		emit(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
