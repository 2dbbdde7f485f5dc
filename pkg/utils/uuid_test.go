package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Margherita Pizza", "margherita-pizza"},
		{"special characters", "Chef's Special!", "chefs-special"},
		{"multiple spaces", "Extra  Hot   Wings", "extra-hot-wings"},
		{"leading and trailing", " Olive Oil ", "olive-oil"},
		{"already a slug", "garlic-bread", "garlic-bread"},
		{"numbers kept", "Combo 2 for 1", "combo-2-for-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	n := GenerateOrderNumber()
	assert.True(t, strings.HasPrefix(n, "ORD-"))
	assert.Len(t, n, len("ORD-")+8)
	assert.NotEqual(t, n, GenerateOrderNumber())
}

func TestGeneratePurchaseNo(t *testing.T) {
	n := GeneratePurchaseNo()
	assert.True(t, strings.HasPrefix(n, "PO-"))
	assert.Len(t, n, len("PO-")+8)
}

func TestGenerateItemCode(t *testing.T) {
	n := GenerateItemCode()
	assert.True(t, strings.HasPrefix(n, "INV-"))
	assert.Len(t, n, len("INV-")+8)
}

func TestParseUUID(t *testing.T) {
	id := NewUUID()
	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
