package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/view"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

const (
	summaryCmdUse   = "summary"
	summaryCmdShort = "Print the filtered aggregates to the terminal"
	notComputable   = "n/a"
)

// Severity label colors for terminal output.
var severityColors = map[taxonomy.Severity]*color.Color{
	taxonomy.SeverityFatal:   color.New(color.FgRed, color.Bold),
	taxonomy.SeveritySerious: color.New(color.FgYellow),
	taxonomy.SeveritySlight:  color.New(color.FgBlue),
}

// NewSummaryCommand creates the summary subcommand.
func NewSummaryCommand() *cobra.Command {
	var cf commonFlags

	cmd := &cobra.Command{
		Use:   summaryCmdUse,
		Short: summaryCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(&cf, cmd.OutOrStdout())
		},
	}

	cf.register(cmd)

	return cmd
}

func runSummary(cf *commonFlags, out io.Writer) error {
	logger := newLogger()

	_, store, st, err := cf.setup(logger)
	if err != nil {
		return err
	}

	currentYear, priorYear := st.YearPair()
	current := view.Filtered(store.Records(), st, currentYear)
	prior := view.Filtered(store.Records(), st, priorYear)

	fmt.Fprintln(out, st.Summary())
	fmt.Fprintln(out)

	writeSeverityTable(out, current, prior, currentYear, priorYear)
	fmt.Fprintln(out)

	writeVehicleTable(out, current, prior, currentYear, priorYear)
	fmt.Fprintln(out)

	writeInsights(out, current, prior)

	return nil
}

func writeSeverityTable(out io.Writer, current, prior []dataset.Record, currentYear, priorYear int) {
	order := make([]string, len(taxonomy.SeverityOrder))
	for i, sev := range taxonomy.SeverityOrder {
		order[i] = sev.Label()
	}

	deltas := aggregate.Deltas(order,
		aggregate.SeverityCounts(current),
		aggregate.SeverityCounts(prior))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", currentYear, priorYear, "Change"})

	for i, delta := range deltas {
		label := delta.Category
		if c, ok := severityColors[taxonomy.SeverityOrder[i]]; ok {
			label = c.Sprint(label)
		}

		t.AppendRow(table.Row{
			label,
			humanize.Comma(int64(delta.Current)),
			humanize.Comma(int64(delta.Prior)),
			coloredDelta(delta.Percent),
		})
	}

	t.Render()
}

func writeVehicleTable(out io.Writer, current, prior []dataset.Record, currentYear, priorYear int) {
	currentGroups := aggregate.VehicleGroupCollisions(current)
	priorGroups := aggregate.VehicleGroupCollisions(prior)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"Vehicle group",
		"Collisions " + strconv.Itoa(currentYear),
		"Collisions " + strconv.Itoa(priorYear),
	})

	for i, g := range currentGroups {
		t.AppendRow(table.Row{
			g.Label,
			humanize.Comma(int64(g.Count)),
			humanize.Comma(int64(priorGroups[i].Count)),
		})
	}

	t.Render()
}

func writeInsights(out io.Writer, current, prior []dataset.Record) {
	ins := aggregate.ComputeInsights(current, prior)

	fmt.Fprintf(out, "Casualties: %s (prior %s, %s)\n",
		humanize.Comma(int64(ins.CurrentTotal)),
		humanize.Comma(int64(ins.PriorTotal)),
		coloredDelta(ins.TotalYoY))

	fmt.Fprintf(out, "Male share of fatal casualties: %s\n", plainShare(ins.FatalMaleShare))

	if ins.TopVehicleGroup != "" {
		fmt.Fprintf(out, "Most involved vehicle group: %s (%s casualties, %s fatal)\n",
			ins.TopVehicleGroup,
			humanize.Comma(int64(ins.TopVehicleCount)),
			plainShare(ins.TopVehicleFatalShare))
	}

	if ins.BiggestMover != nil {
		fmt.Fprintf(out, "Biggest severity mover: %s (%s)\n",
			ins.BiggestMover.Category,
			coloredDelta(ins.BiggestMover.Percent))
	}
}

// coloredDelta renders a signed percentage, red when casualties rose
// and green when they fell.
func coloredDelta(pct *float64) string {
	if pct == nil {
		return notComputable
	}

	text := fmt.Sprintf("%+.1f%%", *pct)

	switch {
	case *pct > 0:
		return color.RedString(text)
	case *pct < 0:
		return color.GreenString(text)
	default:
		return text
	}
}

func plainShare(pct *float64) string {
	if pct == nil {
		return notComputable
	}

	return fmt.Sprintf("%.1f%%", *pct)
}
