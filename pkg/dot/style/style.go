// Package style parses and formats the comma separated DOT "style"
// attribute.
//
// Recognized tokens are the line types (solid, dashed, dotted), filled,
// rounded, radial and invis. Matching is case-insensitive and surrounding
// whitespace is ignored. Other tokens such as "bold" or "setlinewidth(2)"
// are skipped so that newer Graphviz styles do not break parsing.
package style

import (
	"strings"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

// Token names as they appear in DOT.
const (
	Solid   = "solid"
	Dashed  = "dashed"
	Dotted  = "dotted"
	Filled  = "filled"
	Rounded = "rounded"
	Radial  = "radial"
	Invis   = "invis"
)

var (
	lineTypes = map[string]visual.LineType{
		Solid:  visual.LineSolid,
		Dashed: visual.LineEqualDash,
		Dotted: visual.LineDot,
	}
	lineTokens = map[visual.LineType]string{
		visual.LineSolid:     Solid,
		visual.LineEqualDash: Dashed,
		visual.LineDot:       Dotted,
	}
)

// Tokens is the parsed form of a style attribute. An empty Line means no
// line token was present.
type Tokens struct {
	Line      visual.LineType
	Filled    bool
	Rounded   bool
	Radial    bool
	Invisible bool
}

// Parse splits a style attribute into its recognized tokens. When several
// line tokens are given the last one wins.
func Parse(text string) Tokens {
	var t Tokens
	for _, raw := range strings.Split(text, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if lt, ok := lineTypes[tok]; ok {
			t.Line = lt
			continue
		}
		switch tok {
		case Filled:
			t.Filled = true
		case Rounded:
			t.Rounded = true
		case Radial:
			t.Radial = true
		case Invis:
			t.Invisible = true
		}
	}
	return t
}

// LineType returns the line type, defaulting to solid.
func (t Tokens) LineType() visual.LineType {
	if t.Line == "" {
		return visual.LineSolid
	}
	return t.Line
}

// Format writes the tokens in the order line, filled, rounded, radial,
// invis. Tokens equal to the Graphviz default (a solid line, a false flag)
// are omitted; the result is empty when nothing differs.
func Format(t Tokens) string {
	var out []string
	if t.Line != "" && t.Line != visual.LineSolid {
		if tok, ok := lineTokens[t.Line]; ok {
			out = append(out, tok)
		}
	}
	if t.Filled {
		out = append(out, Filled)
	}
	if t.Rounded {
		out = append(out, Rounded)
	}
	if t.Radial {
		out = append(out, Radial)
	}
	if t.Invisible {
		out = append(out, Invis)
	}
	return strings.Join(out, ",")
}

// LineToken returns the DOT token for a line type.
func LineToken(lt visual.LineType) (string, bool) {
	tok, ok := lineTokens[lt]
	return tok, ok
}

// ParseLineType maps a DOT line token to a line type.
func ParseLineType(tok string) (visual.LineType, bool) {
	lt, ok := lineTypes[strings.ToLower(strings.TrimSpace(tok))]
	return lt, ok
}
