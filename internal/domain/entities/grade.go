package entities

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMark is returned for marks that are not numbers in [0, 100].
var ErrInvalidMark = errors.New("please enter a valid percentage between 0 and 100")

// Grade is an NSW HSC style letter grade and band.
type Grade struct {
	Mark   float64
	Letter string
	Band   string
}

type gradeThreshold struct {
	min    float64
	letter string
	band   string
}

// gradeScale is ordered from the highest threshold down.
var gradeScale = []gradeThreshold{
	{90, "A", "Band 6"},
	{80, "B", "Band 5"},
	{70, "C", "Band 4"},
	{60, "D", "Band 3"},
	{50, "E", "Band 2"},
}

// ConvertMark maps a percentage to its grade. Each threshold belongs to the
// upper band, so 90 is an A.
func ConvertMark(mark float64) (Grade, error) {
	if math.IsNaN(mark) || mark < 0 || mark > 100 {
		return Grade{}, ErrInvalidMark
	}

	for _, t := range gradeScale {
		if mark >= t.min {
			return Grade{Mark: mark, Letter: t.letter, Band: t.band}, nil
		}
	}

	return Grade{Mark: mark, Letter: "F", Band: "Band 1"}, nil
}

// ParseMark parses user input such as "85", "72.5", "72,5" or "85%".
func ParseMark(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, ErrInvalidMark
	}

	mark, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(mark) || math.IsInf(mark, 0) {
		return 0, ErrInvalidMark
	}

	return mark, nil
}

// ConvertInput parses and converts raw mark input.
func ConvertInput(input string) (Grade, error) {
	mark, err := ParseMark(input)
	if err != nil {
		return Grade{}, err
	}
	return ConvertMark(mark)
}
