package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDemo bool
var flagFormat string
var flagOutputDir string
var flagDebug bool

var rootCmd = &cobra.Command{
	Use:   "gst-cli",
	Short: "gst-cli scrapes public taxpayer records off the GST portal.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "serve sample data instead of hitting the portal")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: csv, json or both (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "directory for output files (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
