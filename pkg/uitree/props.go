package uitree

import (
	"strconv"
	"strings"
)

// PropertyBag is a loosely-typed property map with typed accessors.
// Absent keys and type mismatches both read as "not set": accessors
// return ok == false and never panic. Lookup is case-insensitive.
//
// Values originate from parsers and may be strings, numbers, booleans,
// or unparsed formula text. Raw formula text stays a string.
type PropertyBag map[string]interface{}

// NewPropertyBag normalizes property names to lower case. A nil map
// yields an empty bag; reading from it is valid.
func NewPropertyBag(props map[string]interface{}) PropertyBag {
	bag := make(PropertyBag, len(props))
	for name, value := range props {
		bag[strings.ToLower(name)] = value
	}
	return bag
}

// GetRaw returns the untyped value for name.
func (b PropertyBag) GetRaw(name string) (interface{}, bool) {
	v, ok := b[strings.ToLower(name)]
	return v, ok
}

// GetString returns the property as a string. Non-string values read
// as not set; rules that want a rendered number should use GetNumber.
func (b PropertyBag) GetString(name string) (string, bool) {
	v, ok := b.GetRaw(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetNumber returns the property as a float64. Integer and float
// values convert; strings parse when they hold a numeric literal.
func (b PropertyBag) GetNumber(name string) (float64, bool) {
	v, ok := b.GetRaw(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// GetBool returns the property as a bool. The strings "true" and
// "false" (any case) convert; anything else reads as not set.
func (b PropertyBag) GetBool(name string) (bool, bool) {
	v, ok := b.GetRaw(name)
	if !ok {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Has reports whether the property is present at all, regardless of
// its type.
func (b PropertyBag) Has(name string) bool {
	_, ok := b.GetRaw(name)
	return ok
}
