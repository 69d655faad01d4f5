package main

import "github.com/spf13/cobra"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "geopage",
	Short: "Build totally rad 90s personal homepages",
	Long: `geopage turns a short description of you (name, hobby, theme and a few
extras) into a single self-contained HTML page in the style of a 1990s
personal homepage. Run "geopage serve" for the web builder with gallery and
guestbooks, or "geopage render" to write a page straight to disk.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "geopage.yaml", "server config file path")
}
