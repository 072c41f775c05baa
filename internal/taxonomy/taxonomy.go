// Package taxonomy provides the categorical classifiers shared by every
// dashboard: severity, casualty class, gender, vehicle groupings and the
// derived band scales. All classifiers are pure and total: any input,
// including out-of-range codes, maps to a category.
package taxonomy

// Severity is the collision severity code from the source extracts.
type Severity int

// Severity codes. Anything outside 1..3 normalizes to SeverityUnknown.
const (
	SeverityFatal   Severity = 1
	SeveritySerious Severity = 2
	SeveritySlight  Severity = 3
	SeverityUnknown Severity = -1
)

// SeverityOrder lists the known severities in display order.
var SeverityOrder = []Severity{SeverityFatal, SeveritySerious, SeveritySlight}

// SeverityPriority lists severities in dominance order, used to break
// ties when several severities share the maximum tally in a bin.
var SeverityPriority = []Severity{SeverityFatal, SeveritySerious, SeveritySlight, SeverityUnknown}

// ParseSeverity normalizes a raw severity code.
func ParseSeverity(code int) Severity {
	switch Severity(code) {
	case SeverityFatal, SeveritySerious, SeveritySlight:
		return Severity(code)
	case SeverityUnknown:
		return SeverityUnknown
	default:
		return SeverityUnknown
	}
}

// Label returns the display label for a severity.
func (s Severity) Label() string {
	switch s {
	case SeverityFatal:
		return "Fatal"
	case SeveritySerious:
		return "Serious"
	case SeveritySlight:
		return "Slight"
	case SeverityUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// IsKSI reports whether the severity counts as killed-or-seriously-injured.
func (s Severity) IsKSI() bool {
	return s == SeverityFatal || s == SeveritySerious
}

// Casualty class codes.
const (
	ClassDriver     = 1
	ClassPassenger  = 2
	ClassPedestrian = 3
	ClassUnknown    = -1
)

// ClassOrder lists casualty class codes in display order.
var ClassOrder = []int{ClassDriver, ClassPassenger, ClassPedestrian, ClassUnknown}

// ClassLabel returns the display label for a casualty class code.
func ClassLabel(code int) string {
	switch code {
	case ClassDriver:
		return "Driver"
	case ClassPassenger:
		return "Passenger"
	case ClassPedestrian:
		return "Pedestrian"
	default:
		return "Unknown"
	}
}

// Gender codes.
const (
	GenderMale    = 1
	GenderFemale  = 2
	GenderUnknown = -1
)

// GenderOrder lists gender codes in display order.
var GenderOrder = []int{GenderMale, GenderFemale, GenderUnknown}

// NormalizeGender collapses every code outside {1, 2} to GenderUnknown.
func NormalizeGender(code int) int {
	if code == GenderMale || code == GenderFemale {
		return code
	}

	return GenderUnknown
}

// GenderLabel returns the display label for a normalized gender code.
func GenderLabel(code int) string {
	switch code {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}
