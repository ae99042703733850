// Package svgunit converts between physical lengths and pixels,
// and parses the lengths, angles and colours written in documents.
package svgunit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const mmPerInch = 25.4

// InchesToPixels converts a length in inches to the nearest pixel count.
func InchesToPixels(inches float64, dpi int) int {
	return int(math.Round(inches * float64(dpi)))
}

func CmToPixels(cm float64, dpi int) int { return InchesToPixels(CmToInches(cm), dpi) }

func MmToPixels(mm float64, dpi int) int { return InchesToPixels(MmToInches(mm), dpi) }

func CmToInches(cm float64) float64 { return cm * 10 / mmPerInch }

func MmToInches(mm float64) float64 { return mm / mmPerInch }

func InchesToMm(inches float64) float64 { return inches * mmPerInch }

func InchesToCm(inches float64) float64 { return inches * mmPerInch / 10 }

func PixelsToMm(px, dpi int) float64 { return InchesToMm(PixelsToInches(px, dpi)) }

func PixelsToCm(px, dpi int) float64 { return InchesToCm(PixelsToInches(px, dpi)) }

func PixelsToInches(px, dpi int) float64 { return float64(px) / float64(dpi) }

// ErrLength is returned for lengths which are not numbers.
var ErrLength = errors.New("svgunit: invalid length")

// ParseLength returns the number of pixels described by `s`,
// which may end with one of the units mm, cm, in or px.
// Without unit, the length is in inches.
// Inches may be written with fractions, as in "1 1/2in" or "5/8".
func ParseLength(s string, dpi int) (int, error) {
	unit := ExtractUnit(s)
	number := strings.TrimSpace(strings.TrimSuffix(s, unit))
	switch unit {
	case "mm":
		mm, err := parseFloat(number)
		if err != nil {
			return 0, err
		}
		return MmToPixels(mm, dpi), nil
	case "cm":
		cm, err := parseFloat(number)
		if err != nil {
			return 0, err
		}
		return CmToPixels(cm, dpi), nil
	case "px":
		px, err := strconv.Atoi(number)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %w", ErrLength, s, err)
		}
		return px, nil
	case "in":
		return parseInches(number, dpi)
	default:
		// unknown suffixes are left to the number parser
		return parseInches(strings.TrimSpace(s), dpi)
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrLength, s, err)
	}
	return f, nil
}

// parseInches accepts "1.5", "3/16" and "7 1/4".
func parseInches(s string, dpi int) (int, error) {
	if !strings.ContainsAny(s, " /") {
		inches, err := parseFloat(s)
		if err != nil {
			return 0, err
		}
		return InchesToPixels(inches, dpi), nil
	}

	var whole float64
	fraction := s
	if i := strings.IndexByte(s, ' '); i != -1 {
		var err error
		if whole, err = parseFloat(s[:i]); err != nil {
			return 0, err
		}
		fraction = strings.TrimSpace(s[i:])
	}
	if fraction == "" {
		return InchesToPixels(whole, dpi), nil
	}

	top, bottom, ok := strings.Cut(fraction, "/")
	if !ok {
		return 0, fmt.Errorf("%w %q: expected a fraction after the whole inches", ErrLength, s)
	}
	num, err := parseFloat(top)
	if err != nil {
		return 0, err
	}
	den, err := parseFloat(bottom)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("%w %q: zero denominator", ErrLength, s)
	}
	return InchesToPixels(whole+num/den, dpi), nil
}

// PxToLength formats a pixel count in the given unit, with two decimals.
// Unknown units fall back to inches.
func PxToLength(px int, unit string, dpi int) string {
	switch unit {
	case "mm":
		return fmt.Sprintf("%.2fmm", PixelsToMm(px, dpi))
	case "cm":
		return fmt.Sprintf("%.2fcm", PixelsToCm(px, dpi))
	case "px":
		return fmt.Sprintf("%dpx", px)
	default:
		return fmt.Sprintf("%.2fin", PixelsToInches(px, dpi))
	}
}

// ExtractUnit returns the two letter suffix of `s`, or an empty
// string when `s` is too short or ends with a digit.
func ExtractUnit(s string) string {
	if len(s) <= 2 {
		return ""
	}
	suffix := s[len(s)-2:]
	for _, r := range suffix {
		if unicode.IsDigit(r) {
			return ""
		}
	}
	return suffix
}
