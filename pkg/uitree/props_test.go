package uitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyBagGetString(t *testing.T) {
	bag := NewPropertyBag(map[string]interface{}{
		"Text":     "Submit",
		"TabIndex": 2,
	})

	v, ok := bag.GetString("Text")
	assert.True(t, ok)
	assert.Equal(t, "Submit", v)

	// Lookup is case-insensitive.
	v, ok = bag.GetString("text")
	assert.True(t, ok)
	assert.Equal(t, "Submit", v)

	// Type mismatch reads as not set.
	_, ok = bag.GetString("TabIndex")
	assert.False(t, ok)

	// Absent key reads as not set.
	_, ok = bag.GetString("Missing")
	assert.False(t, ok)
}

func TestPropertyBagGetNumber(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected float64
		ok       bool
	}{
		{name: "int", value: 3, expected: 3, ok: true},
		{name: "int64", value: int64(7), expected: 7, ok: true},
		{name: "float64", value: 10.5, expected: 10.5, ok: true},
		{name: "numeric string", value: " 42 ", expected: 42, ok: true},
		{name: "non-numeric string", value: "Parent.Size + 2", ok: false},
		{name: "bool", value: true, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bag := NewPropertyBag(map[string]interface{}{"Size": tc.value})
			v, ok := bag.GetNumber("size")
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, v)
			}
		})
	}

	_, ok := NewPropertyBag(nil).GetNumber("size")
	assert.False(t, ok)
}

func TestPropertyBagGetBool(t *testing.T) {
	bag := NewPropertyBag(map[string]interface{}{
		"Visible":  false,
		"Enabled":  "TRUE",
		"Disabled": "no",
		"Count":    1,
	})

	v, ok := bag.GetBool("Visible")
	assert.True(t, ok)
	assert.False(t, v)

	v, ok = bag.GetBool("enabled")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = bag.GetBool("Disabled")
	assert.False(t, ok)

	_, ok = bag.GetBool("Count")
	assert.False(t, ok)
}

func TestPropertyBagNilMap(t *testing.T) {
	bag := NewPropertyBag(nil)
	assert.False(t, bag.Has("anything"))

	_, ok := bag.GetRaw("anything")
	assert.False(t, ok)
}
