package main

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

//go:embed templates/*.tmpl
var starterTemplates embed.FS

// starterData holds the template variables passed to every starter template.
type starterData struct {
	SiteName      string
	SessionSecret string
	DatabasePath  string
}

var initSiteName string

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter server config and site config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		secret, err := newSecret()
		if err != nil {
			return err
		}
		return writeStarter(dir, starterData{
			SiteName:      initSiteName,
			SessionSecret: secret,
			DatabasePath:  "data/geopage.db",
		}, cmd.OutOrStdout())
	},
}

func newSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// writeStarter renders every embedded template into dir, stripping the .tmpl
// suffix. Existing files are never overwritten.
func writeStarter(dir string, data starterData, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return fs.WalkDir(starterTemplates, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		outPath := filepath.Join(dir, strings.TrimSuffix(filepath.Base(path), ".tmpl"))
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists", outPath)
		}

		content, err := starterTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		if err := atomic.WriteFile(outPath, &buf); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
}

func init() {
	initCmd.Flags().StringVar(&initSiteName, "name", "GeoPage", "site name shown in page titles and the RSS feed")
	rootCmd.AddCommand(initCmd)
}
