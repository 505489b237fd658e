package wc

import (
	"fmt"
	"strconv"
)

// Report holds the measurements of one file. A nil field is unset. Concat
// and Merge copy the values they keep, so their result never shares memory
// with the operands.
type Report struct {
	Name  *string
	Bytes *int
	Lines *int
	Words *int
}

func Named(name string) Report {
	return Report{Name: &name}
}

// Concat combines r and o field by field. Fields set in r win over fields
// set in o.
func (r Report) Concat(o Report) Report {
	return Report{
		Name:  or(r.Name, o.Name),
		Bytes: or(r.Bytes, o.Bytes),
		Lines: or(r.Lines, o.Lines),
		Words: or(r.Words, o.Words),
	}
}

func (r Report) IsZero() bool {
	return r.Name == nil && r.Bytes == nil && r.Lines == nil && r.Words == nil
}

func (r Report) String() string {
	return fmt.Sprintf("%s %s %s %s", itoa(r.Lines), itoa(r.Words), itoa(r.Bytes), deref(r.Name))
}

// Merge folds Concat over rs in order, starting from the empty Report.
func Merge(rs ...Report) Report {
	var acc Report
	for _, r := range rs {
		acc = acc.Concat(r)
	}
	return acc
}

func or[T any](a, b *T) *T {
	if a == nil {
		a = b
	}
	if a == nil {
		return nil
	}
	v := *a
	return &v
}

func itoa(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(n int) *int {
	return &n
}
