// Package audit records the rules a report engine applied while building a
// statement. Trails are returned inside report objects so consumers can see
// why a figure came out the way it did without the engine ever logging.
package audit

import "fmt"

// Entry is one applied-rule record.
type Entry struct {
	Rule   string
	Detail string
}

func (e Entry) String() string {
	if e.Detail == "" {
		return e.Rule
	}
	return e.Rule + ": " + e.Detail
}

// Trail is an ordered list of applied rules.
type Trail []Entry

// Addf appends an entry with a formatted detail.
func (t *Trail) Addf(rule, format string, args ...any) {
	*t = append(*t, Entry{Rule: rule, Detail: fmt.Sprintf(format, args...)})
}

// Strings renders the trail one line per entry.
func (t Trail) Strings() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.String()
	}
	return out
}
