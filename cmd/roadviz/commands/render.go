package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ufabox/InfoViz-25W/internal/config"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/charts"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
)

const (
	renderDirPerm      = 0o750
	renderCmdUse       = "render"
	renderCmdShort     = "Write the dashboards as static multi-page HTML"
	renderOutputFlag   = "output"
	renderOutputShort  = "o"
	renderOutputUsage  = "output directory for HTML files"
	renderProjectTitle = "UK Road Collisions"
)

// ErrNoOutputDir is returned when the --output flag is not set.
var ErrNoOutputDir = errors.New("output directory is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		cf        commonFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if outputDir == "" {
				return ErrNoOutputDir
			}

			return runRender(&cf, outputDir)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&outputDir, renderOutputFlag, renderOutputShort, "", renderOutputUsage)

	return cmd
}

func runRender(cf *commonFlags, outputDir string) error {
	logger := newLogger()

	cfg, store, st, err := cf.setup(logger)
	if err != nil {
		return err
	}

	mkErr := os.MkdirAll(outputDir, renderDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	dash := charts.New(store, st,
		charts.WithTheme(themeFromConfig(cfg)),
		charts.WithCellSize(cfg.Dashboard.GridCellSize),
		charts.WithTopN(cfg.Dashboard.TopN),
	)

	renderer := &plotpage.MultiPageRenderer{
		OutputDir: outputDir,
		Title:     renderProjectTitle,
		Theme:     dash.Theme(),
	}

	pages := dash.Pages()

	for _, meta := range pages {
		sections, sectionErr := dash.Sections(meta.ID)
		if sectionErr != nil {
			return sectionErr
		}

		pageErr := renderer.RenderDashboardPage(meta, dash.Status(), pages, sections)
		if pageErr != nil {
			return pageErr
		}

		logger.Info("rendered dashboard", "id", meta.ID)
	}

	indexErr := renderer.RenderIndex(pages)
	if indexErr != nil {
		return fmt.Errorf("render index: %w", indexErr)
	}

	return nil
}

// themeFromConfig maps the configured theme name onto the page theme.
func themeFromConfig(cfg *config.Config) plotpage.Theme {
	if cfg.Dashboard.Theme == config.ThemeDark {
		return plotpage.ThemeDark
	}

	return plotpage.ThemeLight
}
