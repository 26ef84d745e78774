package measurement

import "errors"

// Epsilon is the tolerance used for quantity comparisons throughout the
// engine.
const Epsilon = 1e-6

// ErrIncompatibleDomain is returned when a conversion crosses unit
// domains, or crosses distinct count units ("each" vs "clove").
var ErrIncompatibleDomain = errors.New("units belong to incompatible domains")

// Convert converts an amount between two units of the same domain.
// Count units only convert to themselves.
func Convert(amount float64, from, to Unit) (float64, error) {
	if from.Domain != to.Domain {
		return 0, ErrIncompatibleDomain
	}
	if from.Domain == DomainCount && from.ID != to.ID {
		return 0, ErrIncompatibleDomain
	}
	if from.ID == to.ID {
		return amount, nil
	}
	return amount * from.BaseFactor / to.BaseFactor, nil
}

// ConvertQuantity converts between optional units. A nil unit is a bare
// count: it is compatible with another bare count and, by identity,
// with any count-domain unit, so "3 eggs" can draw on an "each" item.
func ConvertQuantity(amount float64, from, to *Unit) (float64, error) {
	switch {
	case from == nil && to == nil:
		return amount, nil
	case from == nil:
		if to.Domain == DomainCount {
			return amount, nil
		}
		return 0, ErrIncompatibleDomain
	case to == nil:
		if from.Domain == DomainCount {
			return amount, nil
		}
		return 0, ErrIncompatibleDomain
	default:
		return Convert(amount, *from, *to)
	}
}

// Entry is one (unit, amount) pair fed to Aggregate. A nil unit is a
// bare count.
type Entry struct {
	Unit   *Unit
	Amount float64
}

// Aggregate sums entries that share a domain and rescales the total to
// the most readable unit bracket. Mixed domains or bare counts mixed
// with measured units are not summable: the first entry is returned
// unchanged and ok is false, so the caller never silently loses data.
func Aggregate(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, true
	}
	first := entries[0]

	if first.Unit == nil {
		total := 0.0
		for _, e := range entries {
			if e.Unit != nil {
				return first, false
			}
			total += e.Amount
		}
		return Entry{Amount: total}, true
	}

	domain := first.Unit.Domain
	base := 0.0
	for _, e := range entries {
		if e.Unit == nil || e.Unit.Domain != domain {
			return first, false
		}
		if domain == DomainCount && e.Unit.ID != first.Unit.ID {
			return first, false
		}
		base += e.Amount * e.Unit.BaseFactor
	}

	unit, amount := rescale(domain, base, *first.Unit)
	return Entry{Unit: &unit, Amount: amount}, true
}

// rescale picks the readable display bracket for a base-unit total:
// volume totals are in cups, weight totals in grams.
func rescale(domain UnitDomain, base float64, fallback Unit) (Unit, float64) {
	pick := func(id string) (Unit, float64) {
		u := units[id]
		return u, base / u.BaseFactor
	}
	switch domain {
	case DomainVolume:
		switch {
		case base < 1.0/16.0:
			return pick("teaspoon")
		case base < 0.25:
			return pick("tablespoon")
		case base < 4:
			return pick("cup")
		default:
			return pick("quart")
		}
	case DomainWeight:
		switch {
		case base < 28.3495:
			return pick("gram")
		case base < 453.592:
			return pick("ounce")
		case base < 1000:
			return pick("pound")
		default:
			return pick("kilogram")
		}
	default:
		return fallback, base / fallback.BaseFactor
	}
}
