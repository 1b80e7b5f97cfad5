// Package quantity parses and manipulates free-text quantity strings
// such as "500g", "2 L" or "3 pieces". Parsing never fails: text with
// no recognizable number simply yields a nil value, and callers are
// expected to treat that as "cannot compare".
package quantity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe        = regexp.MustCompile(`\d+(\.\d+)?`)
	trailingAlphaRe = regexp.MustCompile(`[a-zA-Z]+$`)
	amountUnitRe    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.*)$`)
	piecesRe        = regexp.MustCompile(`^(\d+)\s+(pieces?|large|medium|small)$`)
	multiplierRe    = regexp.MustCompile(`^(\d+)x\s+(.*)$`)
)

// AsNeeded marks a quantity the resolver could not pin a number on.
const AsNeeded = "as needed"

type Parsed struct {
	Value *float64
	Unit  string
}

// Parse extracts the first decimal number and the trailing alphabetic
// unit from a quantity string. A string without digits parses to a nil
// value and an empty unit.
func Parse(text string) Parsed {
	m := numberRe.FindString(text)
	if m == "" {
		return Parsed{}
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return Parsed{}
	}

	p := Parsed{Value: &v}
	if unit := trailingAlphaRe.FindString(strings.TrimSpace(text)); unit != "" {
		p.Unit = strings.ToLower(unit)
	}
	return p
}

// FormatValue renders a number the way quantities are displayed:
// whole numbers without a decimal point, fractions as-is.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Scale multiplies a quantity string for the requested number of
// servings. Quantities that cannot be scaled numerically are prefixed
// with an "Nx" multiplier instead.
func Scale(text string, servings int) string {
	if servings <= 1 || text == AsNeeded {
		return text
	}

	if m := amountUnitRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			scaled := FormatValue(amount * float64(servings))
			return strings.TrimSpace(scaled + " " + m[2])
		}
	}

	if m := piecesRe.FindStringSubmatch(text); m != nil {
		count, _ := strconv.Atoi(m[1])
		count *= servings
		unit := m[2]
		if unit == "piece" && count > 1 {
			unit = "pieces"
		}
		return fmt.Sprintf("%d %s", count, unit)
	}

	return fmt.Sprintf("%dx %s", servings, text)
}

// Add combines two quantity strings. Matching units add directly;
// weight and volume units are converted to a common base and formatted
// back into the most readable unit. Incompatible quantities are joined
// with a "+" so nothing is silently lost.
func Add(a, b string) string {
	if a == AsNeeded {
		return b
	}
	if b == AsNeeded {
		return a
	}

	am := amountUnitRe.FindStringSubmatch(a)
	bm := amountUnitRe.FindStringSubmatch(b)
	if am != nil && bm != nil {
		av, _ := strconv.ParseFloat(am[1], 64)
		bv, _ := strconv.ParseFloat(bm[1], 64)
		aUnit := strings.TrimSpace(am[2])
		bUnit := strings.TrimSpace(bm[2])

		if aUnit == bUnit {
			return strings.TrimSpace(FormatValue(av+bv) + " " + aUnit)
		}
		if IsWeightUnit(aUnit) && IsWeightUnit(bUnit) {
			return FormatWeight(ToGrams(av, aUnit) + ToGrams(bv, bUnit))
		}
		if IsVolumeUnit(aUnit) && IsVolumeUnit(bUnit) {
			return FormatVolume(ToMilliliters(av, aUnit) + ToMilliliters(bv, bUnit))
		}
	}

	if pa, pb := piecesRe.FindStringSubmatch(a), piecesRe.FindStringSubmatch(b); pa != nil && pb != nil && pa[2] == pb[2] {
		ca, _ := strconv.Atoi(pa[1])
		cb, _ := strconv.Atoi(pb[1])
		unit := pa[2]
		if unit == "piece" && ca+cb > 1 {
			unit = "pieces"
		}
		return fmt.Sprintf("%d %s", ca+cb, unit)
	}

	if ma, mb := multiplierRe.FindStringSubmatch(a), multiplierRe.FindStringSubmatch(b); ma != nil && mb != nil && ma[2] == mb[2] {
		ca, _ := strconv.Atoi(ma[1])
		cb, _ := strconv.Atoi(mb[1])
		return fmt.Sprintf("%dx %s", ca+cb, ma[2])
	}

	return a + " + " + b
}

var weightUnits = map[string]bool{
	"g": true, "gram": true, "grams": true,
	"kg": true, "kilogram": true, "kilograms": true,
}

var volumeUnits = map[string]bool{
	"ml": true, "milliliter": true, "milliliters": true,
	"l": true, "liter": true, "liters": true,
}

func IsWeightUnit(unit string) bool {
	return weightUnits[strings.ToLower(unit)]
}

func IsVolumeUnit(unit string) bool {
	return volumeUnits[strings.ToLower(unit)]
}

func ToGrams(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "kg", "kilogram", "kilograms":
		return value * 1000
	}
	return value
}

func ToMilliliters(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "l", "liter", "liters":
		return value * 1000
	}
	return value
}

// FormatWeight picks grams or kilograms depending on magnitude.
func FormatWeight(grams float64) string {
	if grams >= 1000 {
		kg := grams / 1000
		if kg == float64(int(kg)) {
			return fmt.Sprintf("%d kg", int(kg))
		}
		return fmt.Sprintf("%.1f kg", kg)
	}
	return fmt.Sprintf("%d g", int(grams))
}

// FormatVolume picks milliliters or liters depending on magnitude.
func FormatVolume(ml float64) string {
	if ml >= 1000 {
		l := ml / 1000
		if l == float64(int(l)) {
			return fmt.Sprintf("%d l", int(l))
		}
		return fmt.Sprintf("%.1f l", l)
	}
	return fmt.Sprintf("%d ml", int(ml))
}
