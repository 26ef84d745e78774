// Package ingredient parses free-text ingredient lines into structured
// requirements: a quantity, a canonical name, and parse warnings.
package ingredient

import "strings"

// defaultDescriptors are preparation and quality words that carry no
// identity: "fresh chopped basil" and "basil" are the same ingredient.
var defaultDescriptors = []string{
	"fresh", "dried", "chopped", "minced", "diced", "sliced", "frozen",
	"large", "small", "medium", "organic", "unsalted", "salted",
	"extra", "virgin", "all-purpose", "plain", "granulated", "ground",
	"ripe", "raw", "cooked", "boneless", "skinless", "grated",
	"shredded", "softened", "melted", "peeled", "crushed", "finely",
	"roughly", "thinly", "coarsely", "lightly", "packed", "divided",
	"whole", "canned", "baby",
}

// defaultVariants maps normalized spellings to one canonical form so
// "all-purpose flour" and "flour" aggregate together.
var defaultVariants = map[string]string{
	"caster sugar":      "sugar",
	"powdered sugar":    "sugar",
	"confectioners sugar": "sugar",
	"bread flour":       "flour",
	"cake flour":        "flour",
	"scallion":          "green onion",
	"spring onion":      "green onion",
	"garbanzo bean":     "chickpea",
	"coriander leaves":  "cilantro",
}

// Normalizer canonicalizes ingredient names. It is a pure, total
// function: any input yields some canonical string.
type Normalizer struct {
	descriptors map[string]struct{}
	variants    map[string]string
}

// NormalizerOption customizes a Normalizer.
type NormalizerOption func(*Normalizer)

// WithDescriptors adds descriptor words to strip during normalization.
func WithDescriptors(words ...string) NormalizerOption {
	return func(n *Normalizer) {
		for _, w := range words {
			n.descriptors[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithVariant maps an additional spelling to a canonical form.
func WithVariant(from, to string) NormalizerOption {
	return func(n *Normalizer) {
		n.variants[strings.ToLower(from)] = strings.ToLower(to)
	}
}

// NewNormalizer builds a Normalizer with the default descriptor and
// variant tables.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		descriptors: make(map[string]struct{}, len(defaultDescriptors)),
		variants:    make(map[string]string, len(defaultVariants)),
	}
	for _, d := range defaultDescriptors {
		n.descriptors[d] = struct{}{}
	}
	for from, to := range defaultVariants {
		n.variants[from] = to
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize lowercases, strips parentheticals and descriptors,
// de-pluralizes the final word, collapses whitespace, and maps known
// variant spellings to their canonical form.
func (n *Normalizer) Normalize(name string) string {
	s := strings.ToLower(stripParentheticals(name))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', ';', '.', '!', '*':
			return ' '
		}
		return r
	}, s)

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if _, skip := n.descriptors[w]; skip {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		// Every word was a descriptor; better to keep the original
		// words than return an empty name.
		kept = strings.Fields(strings.ToLower(stripParentheticals(name)))
	}
	if len(kept) > 0 {
		kept[len(kept)-1] = singularize(kept[len(kept)-1])
	}

	canonical := strings.Join(kept, " ")
	if mapped, ok := n.variants[canonical]; ok {
		return mapped
	}
	return canonical
}

func stripParentheticals(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// singularize applies a minimal plural-stripping heuristic good enough
// for ingredient names; it is not a general English stemmer.
func singularize(w string) string {
	switch {
	case len(w) <= 3:
		return w
	case strings.HasSuffix(w, "oes"):
		return strings.TrimSuffix(w, "es") // tomatoes, potatoes
	case strings.HasSuffix(w, "ies"):
		return strings.TrimSuffix(w, "ies") + "y" // berries
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"):
		return w // molasses, asparagus
	case strings.HasSuffix(w, "s"):
		return strings.TrimSuffix(w, "s")
	default:
		return w
	}
}
