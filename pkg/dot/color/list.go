package color

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// MaxListColors is the number of list entries honored by
// [ParseWeightedList]. Gradients are two-stop.
const MaxListColors = 2

// Weighted is one entry of a color list.
type Weighted struct {
	Color  color.NRGBA
	Weight float64
}

// IsList reports whether text is a color list rather than a single color.
func IsList(text string) bool {
	return strings.Contains(text, ":")
}

// ParseWeightedList parses a colon separated list of "color" or
// "color;weight" entries using the [Default] lookup. It returns nil when
// text is not a list.
//
// Entries that fail to parse still contribute [Fallback] or an inferred
// weight; the returned error joins every such failure.
func ParseWeightedList(text, scheme string) ([]Weighted, error) {
	return ParseWeightedListWith(Default, text, scheme)
}

// ParseWeightedListWith is [ParseWeightedList] with an explicit lookup.
func ParseWeightedListWith(l Lookup, text, scheme string) ([]Weighted, error) {
	if !IsList(text) {
		return nil, nil
	}
	var (
		out     []Weighted
		given   []bool
		errs    []error
		nGiven  int
		sumGive float64
	)
	for _, seg := range strings.Split(text, ":") {
		if len(out) == MaxListColors {
			break
		}
		if strings.TrimSpace(seg) == "" {
			continue
		}
		name, weight, hasWeight := strings.Cut(seg, ";")
		c, err := ParseWith(l, name, scheme)
		if err != nil {
			errs = append(errs, err)
		}
		w := Weighted{Color: c}
		ok := false
		if hasWeight {
			f, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
			switch {
			case err != nil || f < 0 || f > 1:
				errs = append(errs, fmt.Errorf("weight %q: %w", weight, ErrUnparseable))
			default:
				w.Weight, ok = f, true
				nGiven++
				sumGive += f
			}
		}
		out = append(out, w)
		given = append(given, ok)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%q: %w", text, ErrUnparseable)
	}
	inferWeights(out, given, nGiven, sumGive)
	return out, errors.Join(errs...)
}

// inferWeights fills the weights that were not given: the remainder of the
// given weights is shared among them, or 1/n each when none were given.
func inferWeights(list []Weighted, given []bool, nGiven int, sum float64) {
	missing := len(list) - nGiven
	if missing == 0 {
		return
	}
	share := 1 / float64(len(list))
	if nGiven > 0 {
		share = max(0, 1-sum) / float64(missing)
	}
	for i := range list {
		if !given[i] {
			list[i].Weight = share
		}
	}
}

// FormatWeightedList writes list as "c1;w1:c2", giving the weight of every
// entry but the last.
func FormatWeightedList(list []Weighted) string {
	var b strings.Builder
	for i, w := range list {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(Format(w.Color))
		if i < len(list)-1 {
			b.WriteByte(';')
			b.WriteString(strconv.FormatFloat(w.Weight, 'f', -1, 64))
		}
	}
	return b.String()
}
