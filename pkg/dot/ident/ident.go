// Package ident quotes, escapes and unquotes DOT identifiers.
//
// An identifier is written bare when it is a plain name
// ([A-Za-z_][A-Za-z0-9_]*, bytes above 0x7F counting as letters), a numeral
// (an optional minus sign and at most one decimal point), or a string that
// is already delimited as "..." or <...>. Everything else, including the
// DOT keywords, is wrapped in double quotes with inner quotes escaped.
//
// [Quote] is idempotent: quoting an already quoted identifier returns it
// unchanged. Attribute values go through [QuoteValue] instead, which treats
// its input as text and only passes HTML strings through.
package ident

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*$`)
	numeralPattern = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)

	keywords = map[string]bool{
		"node": true, "edge": true, "graph": true,
		"digraph": true, "subgraph": true, "strict": true,
	}
)

// NeedsQuoting reports whether id must be quoted to be a valid DOT ID.
func NeedsQuoting(id string) bool {
	switch {
	case keywords[strings.ToLower(id)]:
		return true
	case namePattern.MatchString(id), numeralPattern.MatchString(id):
		return false
	case IsQuoted(id), IsHTML(id):
		return false
	}
	return true
}

// Quote returns id in a form valid as a DOT ID. Inner double quotes that are
// not already escaped become \" and a trailing lone backslash is doubled so
// it cannot escape the closing quote. Other backslash sequences such as \n
// or \N are kept for Graphviz to interpret.
func Quote(id string) string {
	if !NeedsQuoting(id) {
		return id
	}
	return wrap(id)
}

// QuoteValue returns an attribute value in a form valid as a DOT ID. Unlike
// [Quote] it does not pass "..." through: a value is text, so its quote
// characters are escaped. HTML strings are written bare, which makes a value
// delimited by one balanced pair of angle brackets an HTML label.
func QuoteValue(v string) string {
	switch {
	case keywords[strings.ToLower(v)]:
		return wrap(v)
	case namePattern.MatchString(v), numeralPattern.MatchString(v), IsHTML(v):
		return v
	}
	return wrap(v)
}

func wrap(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 2)
	b.WriteByte('"')
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c == '\\' && i+1 < len(id):
			b.WriteByte(c)
			b.WriteByte(id[i+1])
			i++
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// IsQuoted reports whether s is a complete double-quoted DOT string: it
// starts and ends with a quote and every inner quote is escaped.
func IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i == len(s)-1
		}
	}
	return false
}

// IsHTML reports whether s is an HTML-like DOT string delimited by angle
// brackets with balanced nesting.
func IsHTML(s string) bool {
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// Unquote returns the value of a DOT ID as written in a file. Double quotes
// are removed together with the \" escapes and backslash-newline line
// continuations. HTML strings and bare IDs are returned unchanged.
func Unquote(id string) string {
	if !IsQuoted(id) {
		return id
	}
	inner := id[1 : len(id)-1]
	if !strings.Contains(inner, `\`) {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			switch inner[i+1] {
			case '"':
				b.WriteByte('"')
				i++
				continue
			case '\n':
				i++
				continue
			case '\r':
				i++
				if i+1 < len(inner) && inner[i+1] == '\n' {
					i++
				}
				continue
			}
			b.WriteByte(c)
			b.WriteByte(inner[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Namer assigns unique DOT identifiers to element names. Names that needed
// quoting, or that collide with an identifier already handed out, are
// reported as modified.
//
// The zero value is ready to use. A Namer is not safe for concurrent use.
type Namer struct {
	taken map[string]bool   // unquoted dot ids in use
	ids   map[string]string // name -> dot id
}

// Name returns the DOT identifier for name. Repeated calls with the same name
// return the same identifier.
func (n *Namer) Name(name string) (id string, modified bool) {
	if n.ids == nil {
		n.taken = make(map[string]bool)
		n.ids = make(map[string]string)
	}
	if id, ok := n.ids[name]; ok {
		return id, id != name
	}
	id = Quote(name)
	key := Unquote(id)
	for i := 1; n.taken[key]; i++ {
		key = Unquote(Quote(name)) + "_" + strconv.Itoa(i)
		id = Quote(key)
	}
	n.taken[key] = true
	n.ids[name] = id
	return id, id != name
}
