package yaixm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredFieldsCheckerClean(t *testing.T) {
	doc, err := Decode([]byte(aberdeenDocument))
	require.NoError(t, err)

	assert.Empty(t, RequiredFieldsChecker{}.Check(doc))
}

func TestRequiredFieldsChecker(t *testing.T) {
	data := `
airspace:
- name: NO TYPE
  geometry:
  - seqno: 1
    upper: FL115
    lower: SFC
    boundary:
    - circle:
        radius: 2 nm
        centre: 513030N 0001500W
- id: no-volumes
  type: CTA
- name: PARTIAL
  type: CTA
  geometry:
  - seqno: 2
    upper: FL115
    boundary: []
`
	doc, err := Decode([]byte(data))
	require.NoError(t, err)

	violations := RequiredFieldsChecker{}.Check(doc)
	require.Len(t, violations, 5)

	messages := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = v.String()
	}
	assert.Contains(t, messages, "NO TYPE: missing type")
	assert.Contains(t, messages, "no-volumes: missing name")
	assert.Contains(t, messages, "no-volumes: no geometry volumes")
	assert.Contains(t, messages, "PARTIAL seq 2: missing lower limit")
	assert.Contains(t, messages, "PARTIAL seq 2: empty boundary")
}

func TestParseCheckMode(t *testing.T) {
	tests := []struct {
		input    string
		expected CheckMode
	}{
		{"", CheckOff},
		{"off", CheckOff},
		{"warn", CheckWarn},
		{"strict", CheckStrict},
	}
	for _, test := range tests {
		mode, err := ParseCheckMode(test.input)
		require.NoError(t, err)
		assert.Equal(t, test.expected, mode)
	}

	_, err := ParseCheckMode("bogus")
	assert.Error(t, err)
}
