package dynval

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Formatter renders a Value to a byte sink in document order.
//
// Implementations make no buffering guarantees beyond correctness of the
// final concatenation of writes.
type Formatter interface {
	Format(w io.Writer, v Value) error
}

const dateLayout = "2006-01-02 15:04:05"

// formatTime renders epoch seconds as a calendar/time string in UTC.
func formatTime(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(dateLayout)
}

// Format renders the value with the indented human-readable formatter.
func (v Value) Format() string {
	var sb strings.Builder
	_ = (&TextFormatter{}).Format(&sb, v)
	return sb.String()
}

// JSONFormatter streams a Value as strict JSON, performing its own string
// escaping instead of building an intermediate tree.
//
// Unlike the tree-based ToJSON path, dates render as an escaped formatted
// time string and Custom payloads render as an escaped quoted string.
// Invalid and undefined values both render as null.
type JSONFormatter struct{}

// Format implements Formatter.
func (f JSONFormatter) Format(w io.Writer, v Value) error {
	switch v.kind {
	case KindBool:
		return writeString(w, strconv.FormatBool(v.b))
	case KindInt:
		return writeString(w, strconv.FormatInt(int64(v.i), 10))
	case KindFloat:
		return writeString(w, strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		return writeEscaped(w, v.s)
	case KindCustom:
		if v.c == nil {
			return writeString(w, "null")
		}
		return writeEscaped(w, v.c.String())
	case KindDate:
		return writeEscaped(w, formatTime(v.d))
	case KindList:
		if err := writeString(w, "["); err != nil {
			return err
		}
		for i := range v.l {
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
			if err := f.Format(w, v.l[i]); err != nil {
				return err
			}
		}
		return writeString(w, "]")
	case KindMap:
		if err := writeString(w, "{"); err != nil {
			return err
		}
		for i, k := range v.m.keys {
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
			if err := writeEscaped(w, k); err != nil {
				return err
			}
			if err := writeString(w, ":"); err != nil {
				return err
			}
			if err := f.Format(w, v.m.vals[k]); err != nil {
				return err
			}
		}
		return writeString(w, "}")
	default:
		return writeString(w, "null")
	}
}

// writeEscaped writes s as a quoted JSON string. The string is scanned once:
// if no byte needs escaping it is written in a single call; otherwise the
// clean prefix is flushed on the first escape and the remainder is emitted
// byte by byte.
func writeEscaped(w io.Writer, s string) error {
	if err := writeString(w, `"`); err != nil {
		return err
	}
	escaped := false
	for i := 0; i < len(s); i++ {
		e := escapeFor(s[i])
		if e == "" {
			if escaped {
				if err := writeString(w, s[i:i+1]); err != nil {
					return err
				}
			}
			continue
		}
		if !escaped {
			escaped = true
			if i > 0 {
				if err := writeString(w, s[:i]); err != nil {
					return err
				}
			}
		}
		if err := writeString(w, e); err != nil {
			return err
		}
	}
	if !escaped {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return writeString(w, `"`)
}

// escapeFor returns the escape sequence for ch, or "" if ch passes through.
func escapeFor(ch byte) string {
	switch ch {
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	if ch < 0x20 || ch == 0x7f {
		return fmt.Sprintf(`\u%04x`, ch)
	}
	return ""
}

// TextFormatter renders a Value as indented human-readable text.
//
// Scalars render in their canonical form, strings and Custom payloads as raw
// unescaped text, dates as a formatted time string. Lists render on one line
// as "[ e1, e2 ]". Map members render one "key: value" line each; members at
// the top level have no leading spaces and each nesting level below adds one
// space of indentation.
//
// TextFormatter carries indentation state; use a fresh instance per
// top-level call.
type TextFormatter struct {
	indent int
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, v Value) error {
	switch v.kind {
	case KindBool:
		return writeString(w, strconv.FormatBool(v.b))
	case KindInt:
		return writeString(w, strconv.FormatInt(int64(v.i), 10))
	case KindFloat:
		return writeString(w, strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		return writeString(w, v.s)
	case KindCustom:
		if v.c == nil {
			return writeString(w, "null")
		}
		return writeString(w, v.c.String())
	case KindDate:
		return writeString(w, formatTime(v.d))
	case KindList:
		if err := writeString(w, "[ "); err != nil {
			return err
		}
		for i := range v.l {
			if i > 0 {
				if err := writeString(w, ", "); err != nil {
					return err
				}
			}
			if err := f.Format(w, v.l[i]); err != nil {
				return err
			}
		}
		return writeString(w, " ]")
	case KindMap:
		prefix := strings.Repeat(" ", f.indent)
		for _, k := range v.m.keys {
			if err := writeString(w, prefix+k+": "); err != nil {
				return err
			}
			f.indent++
			err := f.Format(w, v.m.vals[k])
			f.indent--
			if err != nil {
				return err
			}
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeString(w, "null")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
