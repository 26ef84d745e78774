package ingredient

import (
	"strings"

	"github.com/pantrychef/v1/internal/domain/measurement"
)

// Requirement is one parsed ingredient line of a recipe: what the dish
// needs, independent of what the pantry holds. Ephemeral, created per
// request.
type Requirement struct {
	RawText  string
	Name     string // canonical name, see Normalizer
	Quantity measurement.Quantity
	Warnings []string
}

// ParseRequirement lexes a raw ingredient line and canonicalizes the
// ingredient name.
func ParseRequirement(line string, n *Normalizer) Requirement {
	qty, name, warnings := ParseLine(line)
	return Requirement{
		RawText:  line,
		Name:     n.Normalize(name),
		Quantity: qty,
		Warnings: warnings,
	}
}

// ParseRequirements lexes a recipe's ingredient list in order.
func ParseRequirements(lines []string, n *Normalizer) []Requirement {
	reqs := make([]Requirement, 0, len(lines))
	for _, line := range lines {
		reqs = append(reqs, ParseRequirement(line, n))
	}
	return reqs
}

// categoryKeywords drives the best-effort shopping-list categorization.
// First keyword contained in the normalized name wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"flour", "Baking"},
	{"sugar", "Baking"},
	{"baking", "Baking"},
	{"yeast", "Baking"},
	{"vanilla", "Baking"},
	{"chocolate", "Baking"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cheese", "Dairy"},
	{"cream", "Dairy"},
	{"yogurt", "Dairy"},
	{"egg", "Dairy"},
	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"pork", "Meat & Seafood"},
	{"fish", "Meat & Seafood"},
	{"salmon", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},
	{"onion", "Produce"},
	{"garlic", "Produce"},
	{"tomato", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},
	{"potato", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"apple", "Produce"},
	{"lemon", "Produce"},
	{"herb", "Produce"},
	{"basil", "Produce"},
	{"cilantro", "Produce"},
	{"salt", "Spices"},
	{"spice", "Spices"},
	{"cumin", "Spices"},
	{"paprika", "Spices"},
	{"cinnamon", "Spices"},
	{"oregano", "Spices"},
	{"oil", "Pantry"},
	{"vinegar", "Pantry"},
	{"pasta", "Pantry"},
	{"rice", "Pantry"},
	{"bean", "Pantry"},
	{"broth", "Pantry"},
	{"stock", "Pantry"},
	{"sauce", "Pantry"},
}

// CategoryFor assigns a shopping-list category to a normalized
// ingredient name, defaulting to "Other".
func CategoryFor(normalizedName string) string {
	for _, kc := range categoryKeywords {
		if strings.Contains(normalizedName, kc.keyword) {
			return kc.category
		}
	}
	return "Other"
}
