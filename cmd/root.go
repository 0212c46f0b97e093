package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "squarify",
	Short: "squarify - batch images onto uniform square canvases",
	Long:  "squarify converts a folder of images to a square canvas of a chosen size:\nnear-square images are resized directly, the rest get a blurred background\nwith the original centered on top, never cropped or distorted.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
