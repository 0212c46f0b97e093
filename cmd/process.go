package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"squarify/internal/batch"
	"squarify/internal/config"
	"squarify/internal/logging"
	"squarify/internal/tui"
)

var (
	processSize       int
	processExt        string
	processNoInput    bool
	processNoProgress bool
)

var processCmd = &cobra.Command{
	Use:   "process [flags] [dir]",
	Short: "Convert every image in a folder to a square canvas",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		size := processSize
		if !cmd.Flags().Changed("size") && !processNoInput {
			size = promptSize(os.Stdin, os.Stdout)
		}
		extension := processExt
		if !cmd.Flags().Changed("ext") && !processNoInput {
			extension = promptExtension(os.Stdin, os.Stdout)
		}

		settings, err := config.New(size, extension)
		if err != nil {
			return err
		}

		outputDir := filepath.Join(dir, config.OutputFolder)
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			// The run cannot proceed; record the failure somewhere
			// findable before bailing.
			if fallback, logErr := logging.Open(config.FallbackLogName); logErr == nil {
				fallback.Errorf("Error creating output folder: %v", err)
				_ = fallback.Close()
			}
			return fmt.Errorf("could not create the output folder: %w", err)
		}

		log, err := logging.Open(filepath.Join(outputDir, config.LogName))
		if err != nil {
			return err
		}
		defer log.Close()

		var updates chan batch.ProgressUpdate
		uiDone := make(chan struct{})
		if processNoProgress {
			log.Mirror(os.Stdout)
			close(uiDone)
		} else {
			updates = make(chan batch.ProgressUpdate, 64)
			program := tea.NewProgram(tui.NewModel(updates))
			go func() {
				_, _ = program.Run()
				close(uiDone)
			}()
		}

		summary, results, runErr := batch.Run(context.Background(), dir, outputDir, settings, log, updates)
		if updates != nil {
			close(updates)
		}
		<-uiDone
		if runErr != nil {
			return runErr
		}

		processedTone := tui.ToneNeutral
		if summary.Processed > 0 {
			processedTone = tui.ToneSuccess
		}
		failedTone := tui.ToneNeutral
		if summary.Failed > 0 {
			failedTone = tui.ToneError
		}
		rows := []tui.SummaryRow{
			{Label: "Eligible images", Value: fmt.Sprintf("%d", summary.Eligible)},
			{Label: "Processed", Value: fmt.Sprintf("%d", summary.Processed), Tone: processedTone},
			{Label: "Failed", Value: fmt.Sprintf("%d", summary.Failed), Tone: failedTone},
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		for _, res := range results {
			if res.Err == nil {
				continue
			}
			fmt.Fprintf(os.Stdout, "%s %s\n",
				failMarkStyle.Render("x"),
				failTextStyle.Render(fmt.Sprintf("%s: %v", res.Job.Display, res.Err)),
			)
		}

		if summary.Processed == 0 {
			fmt.Fprintln(os.Stdout, warnStyle.Render("No images processed. Please check the input folder for valid image files."))
			return nil
		}

		fmt.Fprintf(os.Stdout, "Processed %d images.\n", summary.Processed)
		outPath := outputDir
		if abs, absErr := filepath.Abs(outputDir); absErr == nil {
			outPath = abs
		}
		fmt.Fprintf(os.Stdout, "Images written to: %s\n", outPath)
		return nil
	},
}

var (
	failMarkStyle = lipgloss.NewStyle().Foreground(tui.ColorError)
	failTextStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
	warnStyle     = lipgloss.NewStyle().Foreground(tui.ColorWarn)
)

func init() {
	processCmd.Flags().IntVarP(&processSize, "size", "s", config.DefaultSize, "target canvas size in pixels")
	processCmd.Flags().StringVarP(&processExt, "ext", "e", config.KeepExtension, "output extension (jpg, jpeg, png, webp) or 'org' to keep each source's own")
	processCmd.Flags().BoolVar(&processNoInput, "no-input", false, "never prompt; use flag values as-is")
	processCmd.Flags().BoolVar(&processNoProgress, "no-progress", false, "disable the live progress display, mirror the log to stdout")

	rootCmd.AddCommand(processCmd)
}
