package taxonomy

import "math"

// Casualty age band labels.
const (
	AgeBandUnknown = "Unknown"
	AgeBand0to15   = "0–15"
	AgeBand16to24  = "16–24"
	AgeBand25to59  = "25–59"
	AgeBand60Plus  = "60+"
)

// AgeBands lists the casualty age bands in scale order, Unknown first.
var AgeBands = []string{AgeBandUnknown, AgeBand0to15, AgeBand16to24, AgeBand25to59, AgeBand60Plus}

// AgeBand maps a casualty age to its band. Negative ages are Unknown.
func AgeBand(age int) string {
	switch {
	case age < 0:
		return AgeBandUnknown
	case age <= 15:
		return AgeBand0to15
	case age <= 24:
		return AgeBand16to24
	case age <= 59:
		return AgeBand25to59
	default:
		return AgeBand60Plus
	}
}

// Engine capacity band labels. The top band is open-ended.
const (
	EngineBandUnknown = "Unknown"
	EngineBandTo100   = "≤100 cc"
	EngineBandTo500   = "101–500 cc"
	EngineBandTo1000  = "501–1000 cc"
	EngineBandOver    = ">1000 cc"
)

// EngineBands lists the engine capacity bands in scale order.
var EngineBands = []string{EngineBandTo100, EngineBandTo500, EngineBandTo1000, EngineBandOver, EngineBandUnknown}

// EngineBand maps an engine capacity in cc to its band. NaN, infinite
// and negative capacities are Unknown.
func EngineBand(cc float64) string {
	switch {
	case math.IsNaN(cc) || math.IsInf(cc, 0) || cc < 0:
		return EngineBandUnknown
	case cc <= 100:
		return EngineBandTo100
	case cc <= 500:
		return EngineBandTo500
	case cc <= 1000:
		return EngineBandTo1000
	default:
		return EngineBandOver
	}
}

// Vehicle age band labels.
const (
	VehicleAgeUnknown = "Unknown"
	VehicleAge0to3    = "0–3"
	VehicleAge4to10   = "4–10"
	VehicleAge11to20  = "11–20"
	VehicleAge21Plus  = "21+"
)

// VehicleAgeBands lists the vehicle age bands in scale order.
var VehicleAgeBands = []string{VehicleAge0to3, VehicleAge4to10, VehicleAge11to20, VehicleAge21Plus, VehicleAgeUnknown}

// VehicleAgeBand maps a vehicle age in years to its band.
func VehicleAgeBand(age float64) string {
	switch {
	case math.IsNaN(age) || math.IsInf(age, 0) || age < 0:
		return VehicleAgeUnknown
	case age <= 3:
		return VehicleAge0to3
	case age <= 10:
		return VehicleAge4to10
	case age <= 20:
		return VehicleAge11to20
	default:
		return VehicleAge21Plus
	}
}

// Driver age group labels.
const (
	DriverAgeUnknown = "Unknown"
	DriverAgeUnder18 = "<18"
	DriverAge18to25  = "18–25"
	DriverAge25to55  = "25–55"
	DriverAgeOver55  = ">55"
)

// DriverAgeGroups lists the driver age groups in scale order.
var DriverAgeGroups = []string{DriverAgeUnder18, DriverAge18to25, DriverAge25to55, DriverAgeOver55, DriverAgeUnknown}

// DriverAgeGroup maps a driver age to its group. Negative ages are
// Unknown.
func DriverAgeGroup(age int) string {
	switch {
	case age < 0:
		return DriverAgeUnknown
	case age < 18:
		return DriverAgeUnder18
	case age <= 25:
		return DriverAge18to25
	case age <= 55:
		return DriverAge25to55
	default:
		return DriverAgeOver55
	}
}
