package taxonomy

import (
	"fmt"
	"strconv"
)

// ImpactUnknown is the bucket for every first-point-of-impact code
// outside 0..4, including blanks and the DfT missing-value codes.
const ImpactUnknown = "unknown"

// ImpactOrder lists impact buckets in display order: the four impact
// sides first, then no-impact, then unknown.
var ImpactOrder = []string{"1", "2", "3", "4", "0", ImpactUnknown}

// impactLabels maps impact buckets to display labels.
var impactLabels = map[string]string{
	"0":           "No impact",
	"1":           "Front",
	"2":           "Back",
	"3":           "Offside",
	"4":           "Nearside",
	ImpactUnknown: "Unknown",
}

// ImpactBucket maps a first-point-of-impact code to its bucket.
func ImpactBucket(code int) string {
	if code >= 0 && code <= 4 {
		return strconv.Itoa(code)
	}

	return ImpactUnknown
}

// ImpactLabel returns the display label for an impact bucket.
func ImpactLabel(bucket string) string {
	label, ok := impactLabels[bucket]
	if !ok {
		return "Unknown"
	}

	return label
}

// Weather condition codes run 1..9; 9 is the explicit Unknown code.
const (
	WeatherCodeMin     = 1
	WeatherCodeMax     = 9
	WeatherCodeUnknown = 9
)

// weatherLabels maps weather condition codes to display labels.
var weatherLabels = map[int]string{
	1: "Fine",
	2: "Raining",
	3: "Snowing",
	4: "Fine + high winds",
	5: "Raining + high winds",
	6: "Snowing + high winds",
	7: "Fog / mist",
	8: "Other",
	9: "Unknown",
}

// WeatherLabel returns the display label for a weather condition code.
// Out-of-range codes are treated as the Unknown code.
func WeatherLabel(code int) string {
	label, ok := weatherLabels[code]
	if !ok {
		return weatherLabels[WeatherCodeUnknown]
	}

	return label
}

// DistanceBand describes one casualty distance band.
type DistanceBand struct {
	Code  int
	Label string
}

// DistanceBands lists the casualty distance bands in scale order.
var DistanceBands = []DistanceBand{
	{Code: 1, Label: "0–5 km"},
	{Code: 2, Label: "5–10 km"},
	{Code: 3, Label: "10–20 km"},
	{Code: 4, Label: "20–100 km"},
	{Code: 5, Label: "100+ km"},
}

// casualtyTypes maps the common casualty_type codes; rarer codes keep
// their numeric code visible in the label.
var casualtyTypes = map[int]string{
	0:  "Pedestrian",
	1:  "Pedal cycle",
	2:  "Motorcycle (≤50cc)",
	3:  "Motorcycle (50–125cc)",
	4:  "Motorcycle (125–500cc)",
	5:  "Motorcycle (>500cc)",
	9:  "Car occupant",
	11: "Bus/coach occupant",
	19: "Goods vehicle occupant",
}

// CasualtyTypeLabel returns the display label for a casualty_type code.
func CasualtyTypeLabel(code int) string {
	label, ok := casualtyTypes[code]
	if !ok {
		return fmt.Sprintf("Type %d", code)
	}

	return label
}

// DayNames lists day-of-week display names, Monday first.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayNames maps the DfT day_of_week code (1 = Sunday) to display names.
var dayNames = map[int]string{
	1: "Sun",
	2: "Mon",
	3: "Tue",
	4: "Wed",
	5: "Thu",
	6: "Fri",
	7: "Sat",
}

// DayName returns the display name for a day_of_week code, or "" for
// codes outside 1..7.
func DayName(code int) string {
	return dayNames[code]
}
