package taxonomy

// Fine vehicle group labels.
const (
	GroupActivePersonal = "Active / Personal"
	GroupMotorcycles    = "Motorcycles"
	GroupCarsTaxis      = "Cars & Taxis"
	GroupBuses          = "Buses & Minibuses"
	GroupVansGoods      = "Vans & Goods"
	GroupSpecial        = "Special Vehicles"
	GroupOtherUnknown   = "Other / Unknown"

	// GroupActiveSpecialOther is the coarse merge of the three
	// low-volume fine groups, used wherever the vehicle dimension is
	// charted or brushed.
	GroupActiveSpecialOther = "Active / Special / Other"
)

// vehicleGroups maps the DfT vehicle_type code to its fine group.
var vehicleGroups = map[int]string{
	1:  GroupActivePersonal,
	16: GroupActivePersonal,
	22: GroupActivePersonal,

	2:   GroupMotorcycles,
	3:   GroupMotorcycles,
	4:   GroupMotorcycles,
	5:   GroupMotorcycles,
	23:  GroupMotorcycles,
	97:  GroupMotorcycles,
	103: GroupMotorcycles,
	104: GroupMotorcycles,
	105: GroupMotorcycles,
	106: GroupMotorcycles,

	8:   GroupCarsTaxis,
	9:   GroupCarsTaxis,
	108: GroupCarsTaxis,
	109: GroupCarsTaxis,

	10:  GroupBuses,
	11:  GroupBuses,
	110: GroupBuses,

	19:  GroupVansGoods,
	20:  GroupVansGoods,
	21:  GroupVansGoods,
	98:  GroupVansGoods,
	113: GroupVansGoods,

	17: GroupSpecial,
	18: GroupSpecial,

	90: GroupOtherUnknown,
	99: GroupOtherUnknown,
}

// CoarseVehicleGroups lists the coarse groups in display order.
var CoarseVehicleGroups = []string{
	GroupCarsTaxis,
	GroupMotorcycles,
	GroupBuses,
	GroupVansGoods,
	GroupActiveSpecialOther,
}

// FineVehicleGroup maps a vehicle_type code to its fine group. Unmapped
// codes land in GroupOtherUnknown.
func FineVehicleGroup(code int) string {
	group, ok := vehicleGroups[code]
	if !ok {
		return GroupOtherUnknown
	}

	return group
}

// VehicleGroup maps a vehicle_type code to its coarse group: the fine
// groups Special Vehicles, Active / Personal and Other / Unknown
// collapse into Active / Special / Other.
func VehicleGroup(code int) string {
	switch group := FineVehicleGroup(code); group {
	case GroupSpecial, GroupActivePersonal, GroupOtherUnknown:
		return GroupActiveSpecialOther
	default:
		return group
	}
}
