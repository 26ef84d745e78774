// Package measurement contains the unit catalog and conversion logic
// for recipe and pantry quantities. Conversion is only defined within a
// single unit domain (volume, weight, count).
package measurement

import "strings"

// UnitDomain classifies units for conversion compatibility
type UnitDomain string

const (
	DomainVolume UnitDomain = "volume"
	DomainWeight UnitDomain = "weight"
	DomainCount  UnitDomain = "count"
	DomainOther  UnitDomain = "other"
)

// Unit represents a canonical measurement unit. BaseFactor is the
// multiplier to the domain's base unit: cup for volume, gram for
// weight, 1 for count.
type Unit struct {
	ID         string
	Domain     UnitDomain
	BaseFactor float64
}

// Canonical unit table. Volume factors are expressed in cups, weight
// factors in grams.
var units = map[string]Unit{
	// Volume
	"teaspoon":    {ID: "teaspoon", Domain: DomainVolume, BaseFactor: 1.0 / 48.0},
	"tablespoon":  {ID: "tablespoon", Domain: DomainVolume, BaseFactor: 1.0 / 16.0},
	"fluid ounce": {ID: "fluid ounce", Domain: DomainVolume, BaseFactor: 1.0 / 8.0},
	"cup":         {ID: "cup", Domain: DomainVolume, BaseFactor: 1},
	"pint":        {ID: "pint", Domain: DomainVolume, BaseFactor: 2},
	"quart":       {ID: "quart", Domain: DomainVolume, BaseFactor: 4},
	"gallon":      {ID: "gallon", Domain: DomainVolume, BaseFactor: 16},
	"milliliter":  {ID: "milliliter", Domain: DomainVolume, BaseFactor: 1.0 / 236.588},
	"liter":       {ID: "liter", Domain: DomainVolume, BaseFactor: 1000.0 / 236.588},

	// Weight
	"milligram": {ID: "milligram", Domain: DomainWeight, BaseFactor: 0.001},
	"gram":      {ID: "gram", Domain: DomainWeight, BaseFactor: 1},
	"kilogram":  {ID: "kilogram", Domain: DomainWeight, BaseFactor: 1000},
	"ounce":     {ID: "ounce", Domain: DomainWeight, BaseFactor: 28.3495},
	"pound":     {ID: "pound", Domain: DomainWeight, BaseFactor: 453.592},

	// Count. Count units never convert across distinct ids.
	"each":  {ID: "each", Domain: DomainCount, BaseFactor: 1},
	"clove": {ID: "clove", Domain: DomainCount, BaseFactor: 1},
	"slice": {ID: "slice", Domain: DomainCount, BaseFactor: 1},
	"piece": {ID: "piece", Domain: DomainCount, BaseFactor: 1},
	"can":   {ID: "can", Domain: DomainCount, BaseFactor: 1},
	"stick": {ID: "stick", Domain: DomainCount, BaseFactor: 1},
	"bunch": {ID: "bunch", Domain: DomainCount, BaseFactor: 1},
	"head":  {ID: "head", Domain: DomainCount, BaseFactor: 1},
	"pinch": {ID: "pinch", Domain: DomainCount, BaseFactor: 1},
	"dash":  {ID: "dash", Domain: DomainCount, BaseFactor: 1},
}

// synonyms maps the spellings seen in recipe text to canonical ids.
// Canonical ids map to themselves so Normalize is a single lookup.
var synonyms = map[string]string{
	"tsp": "teaspoon", "t": "teaspoon", "teaspoons": "teaspoon",
	"tbsp": "tablespoon", "tbs": "tablespoon", "tablespoons": "tablespoon",
	"fl oz": "fluid ounce", "fluid ounces": "fluid ounce", "floz": "fluid ounce",
	"c": "cup", "cups": "cup",
	"pt": "pint", "pints": "pint",
	"qt": "quart", "quarts": "quart",
	"gal": "gallon", "gallons": "gallon",
	"ml": "milliliter", "milliliters": "milliliter", "millilitre": "milliliter", "millilitres": "milliliter",
	"l": "liter", "liters": "liter", "litre": "liter", "litres": "liter",
	"mg": "milligram", "milligrams": "milligram",
	"g": "gram", "grams": "gram", "gr": "gram",
	"kg": "kilogram", "kilograms": "kilogram", "kilo": "kilogram", "kilos": "kilogram",
	"oz": "ounce", "ounces": "ounce",
	"lb": "pound", "lbs": "pound", "pounds": "pound",
	"ea": "each",
	"cloves": "clove",
	"slices": "slice",
	"pieces": "piece", "pc": "piece", "pcs": "piece",
	"cans": "can",
	"sticks": "stick",
	"bunches": "bunch",
	"heads": "head",
	"pinches": "pinch",
	"dashes": "dash",
}

func init() {
	for id := range units {
		synonyms[id] = id
	}
}

// Normalize resolves a free-text unit string to its canonical unit.
// Matching is case-insensitive and ignores surrounding punctuation.
func Normalize(raw string) (Unit, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Trim(key, ".,;:()")
	key = strings.Join(strings.Fields(key), " ")
	if key == "" {
		return Unit{}, false
	}
	canonical, ok := synonyms[key]
	if !ok {
		return Unit{}, false
	}
	return units[canonical], true
}

// LookupLongest matches the longest run of leading words that names a
// unit, preferring two-word spellings ("fl oz") over one-word ones.
// It returns the unit and the number of words consumed.
func LookupLongest(words []string) (Unit, int, bool) {
	if len(words) >= 2 {
		if u, ok := Normalize(words[0] + " " + words[1]); ok {
			return u, 2, true
		}
	}
	if len(words) >= 1 {
		if u, ok := Normalize(words[0]); ok {
			return u, 1, true
		}
	}
	return Unit{}, 0, false
}
