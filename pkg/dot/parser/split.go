package parser

import (
	"fmt"
	"strings"
)

// split cuts DOT source into one chunk per top-level graph. The scanner only
// tracks what can hide a brace: quoted strings, HTML strings and comments.
func split(src string) ([]string, error) {
	var (
		chunks []string
		start  = -1
		depth  int
		line   = 1
		bol    = true // at beginning of line, ignoring blanks
	)
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\n':
			line++
			bol = true
			continue
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case bol && c == '#':
			// C preprocessor output line.
			i = skipLine(src, i)
			line++
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLine(src, i)
			line++
			bol = true
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("line %d: unterminated comment", line)
			}
			line += strings.Count(src[i:i+2+end+2], "\n")
			i += 2 + end + 1
			bol = false
			continue
		}
		bol = false
		if start < 0 {
			start = i
		}
		switch c {
		case '"':
			j, err := skipQuoted(src, i)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			line += strings.Count(src[i:j], "\n")
			i = j
		case '<':
			if depth == 0 {
				return nil, fmt.Errorf("line %d: unexpected '<' outside a graph body", line)
			}
			j, err := skipHTML(src, i)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			line += strings.Count(src[i:j], "\n")
			i = j
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("line %d: unbalanced '}'", line)
			}
			if depth == 0 {
				chunks = append(chunks, src[start:i+1])
				start = -1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("line %d: missing '}'", line)
	}
	if start >= 0 {
		return nil, fmt.Errorf("line %d: trailing text %q", line, strings.TrimSpace(src[start:]))
	}
	return chunks, nil
}

func skipLine(src string, i int) int {
	if j := strings.IndexByte(src[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(src) - 1
}

// skipQuoted returns the index of the closing quote of the string at i.
func skipQuoted(src string, i int) (int, error) {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j, nil
		}
	}
	return 0, fmt.Errorf("unterminated string")
}

// skipHTML returns the index of the '>' closing the HTML string at i.
func skipHTML(src string, i int) (int, error) {
	depth := 0
	for j := i; j < len(src); j++ {
		switch src[j] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, fmt.Errorf("unterminated HTML string")
}
