package dot

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dotstyle/pkg/errors"
)

// Warning is a recoverable problem met while reading or writing DOT.
type Warning struct {
	Code errors.Code
	// Element names the graph element, e.g. `node "a"` or `edge a -> b`.
	Element   string
	Attribute string
	Message   string
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Element)
	if w.Attribute != "" {
		fmt.Fprintf(&b, " %s", w.Attribute)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(w.Message)
	return b.String()
}

// Report collects the warnings of one import or export.
type Report struct {
	Warnings []Warning
}

func (r *Report) add(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Count returns the number of warnings with code.
func (r *Report) Count(code errors.Code) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}

// Empty reports whether no warning was recorded.
func (r *Report) Empty() bool { return len(r.Warnings) == 0 }

var summaries = []struct {
	code           errors.Code
	single, plural string
}{
	{errors.ErrCodeIdentifierModified, "1 name was modified to satisfy DOT syntax", "%d names were modified to satisfy DOT syntax"},
	{errors.ErrCodeMalformedValue, "1 attribute value could not be converted and was skipped", "%d attribute values could not be converted and were skipped"},
	{errors.ErrCodeModelIntegrity, "1 graph was skipped because it references missing elements", "%d graphs were skipped because they reference missing elements"},
}

// Summary aggregates the warnings into one line per warning code, suitable
// for reporting once at the end of an operation.
func (r *Report) Summary() []string {
	var lines []string
	for _, s := range summaries {
		switch n := r.Count(s.code); n {
		case 0:
		case 1:
			lines = append(lines, s.single)
		default:
			lines = append(lines, fmt.Sprintf(s.plural, n))
		}
	}
	return lines
}
