package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
)

var (
	renderPreset string
	renderOutput string
	renderSeed   uint64
	renderStrict bool
)

var renderCmd = &cobra.Command{
	Use:   "render [site.yaml]",
	Short: "Render a homepage to an HTML file",
	Long: `Reads a site configuration (YAML or JSON) or a named preset and writes the
generated page. The output defaults to <name>-90s-site.html; use -o - for
stdout.`,
	Example: `  geopage render site.yaml
  geopage render --preset hacker -o hacker.html
  geopage presets --export gamer | geopage render -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSiteConfig(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		if problems := configProblems(cfg); len(problems) > 0 {
			if renderStrict {
				return fmt.Errorf("invalid site config: %s", strings.Join(problems, "; "))
			}
			for _, msg := range problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
			}
		}

		var opts []sitegen.Option
		if renderSeed != 0 {
			opts = append(opts, sitegen.WithRandom(rand.New(rand.NewPCG(renderSeed, renderSeed))))
		}
		html := sitegen.New(opts...).Generate(cfg)

		out := renderOutput
		if out == "" {
			out = sitecfg.DownloadName(cfg.Name)
		}
		if out == "-" {
			_, err := io.WriteString(cmd.OutOrStdout(), html)
			return err
		}
		if err := atomic.WriteFile(out, strings.NewReader(html)); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		return nil
	},
}

// configProblems lists the publishing rule violations of cfg plus an unknown
// theme, which would silently render with the default.
func configProblems(cfg sitecfg.Config) []string {
	problems := sitecfg.Check(cfg).Errors
	if cfg.Theme != "" && !sitegen.IsTheme(cfg.Theme) {
		problems = append(problems, fmt.Sprintf("unknown theme %q renders as %s", cfg.Theme, sitegen.DefaultTheme))
	}
	return problems
}

// loadSiteConfig reads a preset, a file, or stdin when the path is "-".
func loadSiteConfig(stdin io.Reader, args []string) (sitecfg.Config, error) {
	if renderPreset != "" {
		if len(args) > 0 {
			return sitecfg.Config{}, fmt.Errorf("use either --preset or a config file, not both")
		}
		p, ok := sitecfg.Preset(renderPreset)
		if !ok {
			return sitecfg.Config{}, fmt.Errorf("unknown preset %q", renderPreset)
		}
		return p.Config, nil
	}
	if len(args) == 0 {
		return sitecfg.Config{}, fmt.Errorf("a config file or --preset is required")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return sitecfg.Config{}, fmt.Errorf("reading site config: %w", err)
	}
	return parseSiteConfig(data)
}

// parseSiteConfig decodes YAML; JSON input works too since JSON is valid YAML.
func parseSiteConfig(data []byte) (sitecfg.Config, error) {
	var cfg sitecfg.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return sitecfg.Config{}, fmt.Errorf("parsing site config: %w", err)
	}
	return cfg, nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderPreset, "preset", "p", "", "render a built-in preset instead of a file")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file, or - for stdout")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "seed the visitor counters and fun fact for reproducible output")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail instead of warning when the config would not be accepted for publishing")
	rootCmd.AddCommand(renderCmd)
}
