package http

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatPath fills the slots of a path template with args. A slot is either
// "{}", which takes the next argument, or "{N}", which takes the argument at
// index N. The two styles can't be mixed in one template. Literal braces are
// written "{{" and "}}". Arguments not referenced by any slot are ignored.
//
// A slot may carry a conversion and a format spec, as in "{0!s:>8}". The only
// conversion is "s". The spec is [[fill]align][width][.precision][s], with
// align one of '<', '>' or '^'; width and precision count runes.
func FormatPath(template string, args []string) (string, error) {
	var (
		b      strings.Builder
		next   int
		auto   bool
		manual bool
	)
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &FormatError{Template: template, Offset: i, Reason: "single '}' encountered"}

		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Template: template, Offset: i, Reason: "single '{' encountered"}
			}
			name, conv, spec, reason := splitField(template[i+1 : i+1+end])
			if reason != "" {
				return "", &FormatError{Template: template, Offset: i, Reason: reason}
			}

			var index int
			if name == "" {
				if manual {
					return "", &FormatError{Template: template, Offset: i, Reason: "cannot switch from manual field numbering to automatic"}
				}
				auto = true
				index = next
				next++
			} else {
				n, ok := fieldIndex(name)
				if !ok {
					return "", &FormatError{Template: template, Offset: i, Reason: fmt.Sprintf("unsupported field %q", name)}
				}
				if auto {
					return "", &FormatError{Template: template, Offset: i, Reason: "cannot switch from automatic field numbering to manual"}
				}
				manual = true
				index = n
			}
			if index >= len(args) {
				return "", &FormatError{Template: template, Offset: i, Reason: fmt.Sprintf("replacement index %d out of range for %d argument(s)", index, len(args))}
			}
			if conv != "" && conv != "s" {
				return "", &FormatError{Template: template, Offset: i, Reason: fmt.Sprintf("unsupported conversion %q", conv)}
			}
			value, reason := formatString(args[index], spec)
			if reason != "" {
				return "", &FormatError{Template: template, Offset: i, Reason: reason}
			}
			b.WriteString(value)
			i += end + 1

		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// splitField splits a replacement field into its name, conversion and spec.
// A non-empty reason reports a malformed field.
func splitField(field string) (name, conv, spec, reason string) {
	end := strings.IndexAny(field, "!:")
	if end < 0 {
		return field, "", "", ""
	}
	name, rest := field[:end], field[end:]
	if rest[0] == '!' {
		if len(rest) < 2 {
			return "", "", "", "end of string while looking for conversion specifier"
		}
		conv, rest = rest[1:2], rest[2:]
		if rest != "" && rest[0] != ':' {
			return "", "", "", "expected ':' after conversion specifier"
		}
	}
	if rest != "" {
		spec = rest[1:]
	}
	return name, conv, spec, ""
}

// fieldIndex parses a manual field number, which is made of ASCII digits
// only.
func fieldIndex(name string) (int, bool) {
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name)
	return n, err == nil
}

// formatString applies a string format spec to s. A non-empty reason
// reports a spec that does not apply to strings.
func formatString(s, spec string) (string, string) {
	if spec == "" || spec == "s" {
		return s, ""
	}
	rest := spec

	fill, align := ' ', byte(0)
	if r, size := utf8.DecodeRuneInString(rest); size < len(rest) && isAlign(rest[size]) {
		fill, align, rest = r, rest[size], rest[size+1:]
	} else if rest != "" && isAlign(rest[0]) {
		align, rest = rest[0], rest[1:]
	}
	if align == '=' {
		return "", "'=' alignment not allowed in string format specifier"
	}

	width, rest := leadingDigits(rest)
	precision := -1
	if rest != "" && rest[0] == '.' {
		var digits string
		digits, rest = leadingDigits(rest[1:])
		if digits == "" {
			return "", "format specifier missing precision"
		}
		precision, _ = strconv.Atoi(digits)
	}
	if rest != "" && rest != "s" {
		return "", fmt.Sprintf("invalid format specifier %q for a string", spec)
	}

	if precision >= 0 && utf8.RuneCountInString(s) > precision {
		n := 0
		for i := range s {
			if n == precision {
				s = s[:i]
				break
			}
			n++
		}
	}

	w, _ := strconv.Atoi(width)
	pad := w - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s, ""
	}
	f := string(fill)
	switch align {
	case '>':
		return strings.Repeat(f, pad) + s, ""
	case '^':
		left := pad / 2
		return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left), ""
	default:
		return s + strings.Repeat(f, pad), ""
	}
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '^' || c == '='
}

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
