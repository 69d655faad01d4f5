package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
)

var presetExport string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in presets and themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if presetExport != "" {
			p, ok := sitecfg.Preset(presetExport)
			if !ok {
				return fmt.Errorf("unknown preset %q", presetExport)
			}
			data, err := yaml.Marshal(p.Config)
			if err != nil {
				return fmt.Errorf("marshalling preset: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tTHEME\tDESCRIPTION")
		for _, p := range sitecfg.Presets() {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", p.ID, p.Emoji, p.Name, p.Config.Theme, p.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nThemes: %v\n", sitegen.ThemeNames())
		return nil
	},
}

func init() {
	presetsCmd.Flags().StringVar(&presetExport, "export", "", "print the config of one preset as YAML")
	rootCmd.AddCommand(presetsCmd)
}
