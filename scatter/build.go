package scatter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/gplot"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]`)

var lower = cases.Lower(language.Und)

// Slug turns a chart title into a file name stem: every rune that is not
// a letter, digit or underscore becomes an underscore, and the result is
// lower-cased.
func Slug(title string) string {
	return lower.String(nonWord.ReplaceAllString(title, "_"))
}

// Build loads the chart file at configPath, renders it and writes
// {outputDir}/{slug(title)}.png, creating outputDir if needed. Relative
// data paths resolve against the directory of configPath unless
// WithBaseDir overrides it. It returns the path written.
func Build(configPath, outputDir string, opts ...Option) (string, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return "", err
	}

	opts = append([]Option{WithBaseDir(filepath.Dir(configPath))}, opts...)
	c, err := Render(cfg, opts...)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return "", fmt.Errorf("scatter: create output dir: %w", err)
	}
	out := filepath.Join(outputDir, Slug(cfg.Title)+".png")
	if err := c.SavePNG(out); err != nil {
		return "", err
	}
	gplot.Logger().Info("chart written", "path", out)
	return out, nil
}
