package commands

import (
	"github.com/spf13/cobra"

	"github.com/ufabox/InfoViz-25W/internal/export"
)

const (
	exportCmdUse      = "export"
	exportCmdShort    = "Write the filtered aggregates to an xlsx workbook"
	exportOutputFlag  = "output"
	exportOutputShort = "o"
	exportOutputUsage = "workbook path (overrides export.path)"
)

// NewExportCommand creates the export subcommand.
func NewExportCommand() *cobra.Command {
	var (
		cf         commonFlags
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   exportCmdUse,
		Short: exportCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(&cf, outputPath)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&outputPath, exportOutputFlag, exportOutputShort, "", exportOutputUsage)

	return cmd
}

func runExport(cf *commonFlags, outputPath string) error {
	logger := newLogger()

	cfg, store, st, err := cf.setup(logger)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = cfg.Export.Path
	}

	if err := export.New(store, st).SaveXLSX(outputPath); err != nil {
		return err
	}

	logger.Info("workbook written", "path", outputPath)

	return nil
}
