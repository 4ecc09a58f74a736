package unitconv

import (
	"fmt"
	"strconv"
	"strings"
)

type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
	Volume      Category = "volume"
)

// ConversionError carries a reason that is safe to show to the user.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return e.Reason
}

type IConverter interface {
	Convert(amount float64, from string, to string) (float64, string, error)
}

type unit struct {
	symbol   string
	category Category
	// factor converts one of this unit into the category's base unit
	// (metre, kilogram, litre). Unused for temperature.
	factor float64
}

type converter struct {
	units map[string]unit
}

func New() IConverter {
	return &converter{units: defaultUnits()}
}

func (c *converter) Convert(amount float64, from string, to string) (float64, string, error) {
	fromUnit, ok := c.lookup(from)
	if !ok {
		return 0, "", &ConversionError{Reason: fmt.Sprintf("Unknown unit: %s.", from)}
	}

	toUnit, ok := c.lookup(to)
	if !ok {
		return 0, "", &ConversionError{Reason: fmt.Sprintf("Unknown unit: %s.", to)}
	}

	if fromUnit.category != toUnit.category {
		return 0, "", &ConversionError{Reason: fmt.Sprintf(
			"Cannot convert %s (%s) to %s (%s).",
			from, fromUnit.category, to, toUnit.category,
		)}
	}

	var result float64
	if fromUnit.category == Temperature {
		result = fromCelsius(toCelsius(amount, fromUnit.symbol), toUnit.symbol)
	} else {
		result = amount * fromUnit.factor / toUnit.factor
	}

	message := fmt.Sprintf("%s %s is %s %s.", FormatValue(amount), from, FormatValue(result), to)
	return result, message, nil
}

func (c *converter) lookup(name string) (unit, bool) {
	u, ok := c.units[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

func toCelsius(v float64, symbol string) float64 {
	switch symbol {
	case "f":
		return (v - 32) * 5 / 9
	case "k":
		return v - 273.15
	default:
		return v
	}
}

func fromCelsius(v float64, symbol string) float64 {
	switch symbol {
	case "f":
		return v*9/5 + 32
	case "k":
		return v + 273.15
	default:
		return v
	}
}

// FormatValue rounds to six decimals and trims trailing zeros.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func defaultUnits() map[string]unit {
	units := map[string]unit{}

	add := func(category Category, symbol string, factor float64, aliases ...string) {
		u := unit{symbol: symbol, category: category, factor: factor}
		units[symbol] = u
		for _, alias := range aliases {
			units[alias] = u
		}
	}

	add(Length, "mm", 0.001, "millimeter", "millimeters", "millimetre", "millimetres")
	add(Length, "cm", 0.01, "centimeter", "centimeters", "centimetre", "centimetres")
	add(Length, "m", 1, "meter", "meters", "metre", "metres")
	add(Length, "km", 1000, "kilometer", "kilometers", "kilometre", "kilometres")
	add(Length, "in", 0.0254, "inch", "inches")
	add(Length, "ft", 0.3048, "foot", "feet")
	add(Length, "yd", 0.9144, "yard", "yards")
	add(Length, "mi", 1609.344, "mile", "miles")

	add(Weight, "mg", 0.000001, "milligram", "milligrams")
	add(Weight, "g", 0.001, "gram", "grams")
	add(Weight, "kg", 1, "kilogram", "kilograms", "kilo", "kilos")
	add(Weight, "oz", 0.0283495, "ounce", "ounces")
	add(Weight, "lb", 0.453592, "lbs", "pound", "pounds")
	add(Weight, "ton", 1000, "tons", "tonne", "tonnes")

	add(Temperature, "c", 0, "celsius", "centigrade")
	add(Temperature, "f", 0, "fahrenheit")
	add(Temperature, "k", 0, "kelvin")

	add(Volume, "ml", 0.001, "milliliter", "milliliters", "millilitre", "millilitres")
	add(Volume, "l", 1, "liter", "liters", "litre", "litres")
	add(Volume, "gal", 3.78541, "gallon", "gallons")
	add(Volume, "qt", 0.946353, "quart", "quarts")
	add(Volume, "pt", 0.473176, "pint", "pints")
	add(Volume, "cup", 0.236588, "cups")

	return units
}
