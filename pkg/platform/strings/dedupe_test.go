package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitListLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "comma separated single value",
			input:    []string{"doris,dlr"},
			expected: []string{"doris", "dlr"},
		},
		{
			name:     "repeated query values",
			input:    []string{"doris", "CERSAI"},
			expected: []string{"doris", "cersai"},
		},
		{
			name:     "mixed separators with duplicates and blanks",
			input:    []string{" DORIS , dlr", "dlr", "", " , "},
			expected: []string{"doris", "dlr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitListLower(tt.input...))
		})
	}
}

func TestDedupeAndTrimLower(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, DedupeAndTrimLower([]string{"  FOO ", "bar", "Foo"}))
	assert.Empty(t, DedupeAndTrimLower([]string{}))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("123, Pali Hill, Bandra West, Mumbai", "bandra"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Bangalore", "mumbai"))
}
