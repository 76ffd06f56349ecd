// series.go
package dataframe

import (
	"fmt"
	"strconv"
	"strings"
)

// Series is a single named column. Cells are string, int, int64, float64 or
// nil for a missing value; values keep the order they were appended in.
type Series struct {
	name   string
	values []interface{}
}

func NewSeries(name string, values ...interface{}) *Series {
	s := &Series{name: name, values: make([]interface{}, len(values))}
	copy(s.values, values)
	return s
}

func (s *Series) Name() string { return s.name }

func (s *Series) Len() int { return len(s.values) }

func (s *Series) Value(i int) interface{} { return s.values[i] }

// Values returns a copy of the column cells.
func (s *Series) Values() []interface{} {
	out := make([]interface{}, len(s.values))
	copy(out, s.values)
	return out
}

// Unique returns the distinct cell values in first-occurrence order.
func (s *Series) Unique() []interface{} {
	seen := make(map[string]bool, len(s.values))
	uniq := []interface{}{}
	for _, v := range s.values {
		key := cellKey(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, v)
	}
	return uniq
}

// Float coerces the cell at i to a float64. Ints and floats convert
// directly, strings go through strconv; nil and anything unparseable
// report ok=false.
func (s *Series) Float(i int) (float64, bool) {
	return toFloat(s.values[i])
}

// String returns the cell at i in its string form, the form membership
// filters compare against.
func (s *Series) String(i int) string {
	return cellString(s.values[i])
}

func (s *Series) rename(name string) *Series {
	return &Series{name: name, values: s.values}
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// cellKey builds a map key for grouping and distinct counting. The type
// prefix keeps int 1 and string "1" apart.
func cellKey(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T:%v", v, v)
}
