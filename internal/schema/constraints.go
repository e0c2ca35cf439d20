package schema

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Constraint checks a JSON-decoded value (bool, float64, string, []any or
// typed slices) against one key's type rule. Implementations are pure.
type Constraint interface {
	Check(v any) error
}

type BoolConstraint struct{}

func (BoolConstraint) Check(v any) error {
	if _, ok := v.(bool); !ok {
		return fmt.Errorf("must be a boolean, got %s", typeName(v))
	}
	return nil
}

// IntConstraint is a bounded integer. JSON numbers arrive as float64;
// fractional values are rejected rather than truncated.
type IntConstraint struct {
	Min int64
	Max int64
}

func intRange(min, max int64) IntConstraint { return IntConstraint{Min: min, Max: max} }

func intMin(min int64) IntConstraint { return IntConstraint{Min: min, Max: math.MaxInt64} }

func (c IntConstraint) Check(v any) error {
	var n int64
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return fmt.Errorf("must be an integer, got %v", t)
		}
		n = int64(t)
	case int:
		n = int64(t)
	case int64:
		n = t
	default:
		return fmt.Errorf("must be a number, got %s", typeName(v))
	}
	if n < c.Min {
		return fmt.Errorf("must be at least %d, got %d", c.Min, n)
	}
	if n > c.Max {
		return fmt.Errorf("must be at most %d, got %d", c.Max, n)
	}
	return nil
}

type EnumConstraint struct {
	Values []string
}

func oneOf(values ...string) EnumConstraint { return EnumConstraint{Values: values} }

func (c EnumConstraint) Check(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("must be a string, got %s", typeName(v))
	}
	for _, allowed := range c.Values {
		if s == allowed {
			return nil
		}
	}
	return fmt.Errorf("must be one of [%s], got %q", strings.Join(c.Values, ", "), s)
}

// StringConstraint accepts any string; the empty string is always allowed.
// With URI set, non-empty values must parse as an absolute URI.
type StringConstraint struct {
	URI bool
}

func (c StringConstraint) Check(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("must be a string, got %s", typeName(v))
	}
	if c.URI && s != "" {
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("must be a valid URI, got %q", s)
		}
	}
	return nil
}

type StringListConstraint struct{}

func (StringListConstraint) Check(v any) error {
	switch t := v.(type) {
	case []string:
		return nil
	case []any:
		for i, item := range t {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("element %d must be a string, got %s", i, typeName(item))
			}
		}
		return nil
	default:
		return fmt.Errorf("must be an array of strings, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case string:
		return "string"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
