package aggregate

import (
	"strconv"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Insights is the composite bundle behind the key-insights panel.
// Nil percentages mean "n/a": not computable from the data at hand.
type Insights struct {
	CurrentTotal int
	PriorTotal   int
	TotalYoY     *float64

	BySeverity []Delta

	FatalMaleShare *float64

	TopVehicleGroup      string
	TopVehicleCount      int
	TopVehicleFatalShare *float64

	BiggestMover *Delta
}

// ComputeInsights derives the insight bundle from the current and
// prior filtered views.
func ComputeInsights(current, prior []dataset.Record) Insights {
	ins := Insights{
		CurrentTotal: len(current),
		PriorTotal:   len(prior),
		TotalYoY:     YoY(len(current), len(prior)),
	}

	severityOrder := make([]string, len(taxonomy.SeverityOrder))
	for i, sev := range taxonomy.SeverityOrder {
		severityOrder[i] = sev.Label()
	}

	bySeverity := func(rec dataset.Record) string {
		return taxonomy.ParseSeverity(rec.Severity).Label()
	}

	ins.BySeverity = Deltas(severityOrder, CountBy(current, bySeverity), CountBy(prior, bySeverity))
	ins.BiggestMover = BiggestMover(ins.BySeverity)

	ins.FatalMaleShare = fatalMaleShare(current)

	topGroup, topCount, fatalShare := topVehicleGroup(current)
	ins.TopVehicleGroup = topGroup
	ins.TopVehicleCount = topCount
	ins.TopVehicleFatalShare = fatalShare

	return ins
}

// fatalMaleShare is the male share of fatal casualties among the
// known genders; nil when no fatal casualty has a known gender.
func fatalMaleShare(view []dataset.Record) *float64 {
	male := 0
	known := 0

	for i := range view {
		if taxonomy.ParseSeverity(view[i].Severity) != taxonomy.SeverityFatal {
			continue
		}

		switch view[i].Sex {
		case taxonomy.GenderMale:
			male++
			known++
		case taxonomy.GenderFemale:
			known++
		}
	}

	return Share(male, known)
}

// topVehicleGroup ranks the coarse vehicle groups by casualty rows and
// returns the leader with its fatal share. An empty view yields an
// empty group name.
func topVehicleGroup(view []dataset.Record) (group string, count int, fatalShare *float64) {
	totals := make(map[string]int)
	fatals := make(map[string]int)

	for i := range view {
		g := taxonomy.VehicleGroup(view[i].VehicleType)
		totals[g]++

		if taxonomy.ParseSeverity(view[i].Severity) == taxonomy.SeverityFatal {
			fatals[g]++
		}
	}

	if len(totals) == 0 {
		return "", 0, nil
	}

	top := TopN(totals, taxonomy.CoarseVehicleGroups, 1)[0]

	return top.Category, top.Count, Share(fatals[top.Category], top.Count)
}

// SeverityCounts counts casualty rows per known severity in display
// order, keyed by severity label.
func SeverityCounts(view []dataset.Record) map[string]int {
	return CountBy(view, func(rec dataset.Record) string {
		return taxonomy.ParseSeverity(rec.Severity).Label()
	})
}

// SeverityCode returns the canonical string code for a record's
// severity, the form brush values use.
func SeverityCode(rec dataset.Record) string {
	return strconv.Itoa(rec.Severity)
}
