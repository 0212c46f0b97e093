package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"squarify/internal/batch"
	"squarify/internal/codec"
	"squarify/internal/config"
	"squarify/internal/transform"
	"squarify/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "Report how each eligible image would be treated, without writing anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		settings, err := config.New(config.DefaultSize, config.KeepExtension)
		if err != nil {
			return err
		}

		outputDir := filepath.Join(dir, config.OutputFolder)
		jobs, err := batch.Scan(dir, outputDir, settings)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Fprintln(os.Stdout, warnStyle.Render("No eligible images found."))
			return nil
		}

		for _, job := range jobs {
			width, height, dimErr := codec.Dimensions(job.SourcePath)
			if dimErr != nil {
				fmt.Fprintf(os.Stdout, "%s  %s\n",
					inspectFileStyle.Render(job.Display),
					failTextStyle.Render(fmt.Sprintf("unreadable: %v", dimErr)),
				)
				continue
			}

			treatment := "composite"
			if transform.Near(width, height, settings.Tolerance) {
				treatment = "resize"
			}
			fmt.Fprintf(os.Stdout, "%s  %s  %s\n",
				inspectFileStyle.Render(job.Display),
				inspectDimStyle.Render(fmt.Sprintf("%dx%d", width, height)),
				inspectPlanStyle.Render(treatment+" -> "+filepath.Base(job.OutputPath)),
			)
		}
		return nil
	},
}

var (
	inspectFileStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	inspectDimStyle  = lipgloss.NewStyle().Foreground(tui.ColorDim)
	inspectPlanStyle = lipgloss.NewStyle().Foreground(tui.ColorInk)
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}
