package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsDescriptors(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		in   string
		want string
	}{
		{"Fresh Basil", "basil"},
		{"chopped fresh cilantro", "cilantro"},
		{"red bell peppers, diced", "red bell pepper"},
		{"all-purpose flour", "flour"},
		{"granulated sugar", "sugar"},
		{"extra virgin olive oil", "olive oil"},
		{"unsalted butter", "butter"},
		{"large eggs", "egg"},
		{"tomatoes", "tomato"},
		{"berries", "berry"},
		{"molasses", "molasses"},
		{"Eggs", "egg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeStripsParentheticals(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "butter", n.Normalize("butter (softened, room temperature)"))
	assert.Equal(t, "chicken breast", n.Normalize("chicken breasts (about 2 lbs)"))
}

func TestNormalizeVariantGroups(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "sugar", n.Normalize("caster sugar"))
	assert.Equal(t, "green onion", n.Normalize("scallions"))
	assert.Equal(t, "chickpea", n.Normalize("garbanzo beans"))
}

func TestNormalizeNeverEmpty(t *testing.T) {
	n := NewNormalizer()

	// All-descriptor input keeps its words instead of vanishing.
	assert.Equal(t, "fresh", n.Normalize("fresh"))
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   "))
}

func TestNormalizeOptions(t *testing.T) {
	n := NewNormalizer(
		WithDescriptors("heirloom"),
		WithVariant("aubergine", "eggplant"),
	)

	assert.Equal(t, "tomato", n.Normalize("heirloom tomatoes"))
	assert.Equal(t, "eggplant", n.Normalize("Aubergine"))
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"flour", "Baking"},
		{"whole milk", "Dairy"},
		{"chicken thigh", "Meat & Seafood"},
		{"red bell pepper", "Produce"},
		{"olive oil", "Pantry"},
		{"saffron thread", "Other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.name), "CategoryFor(%q)", tt.name)
	}
}
