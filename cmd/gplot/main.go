// Command gplot renders charts described by YAML or TOML chart files into
// PNG images.
//
// Usage:
//
//	gplot --graph scatter --config chart.yaml [--output dir] [--csv-delimiter ';']
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/internal/csvdata"
	"github.com/gogpu/gplot/scatter"
	"github.com/gogpu/gplot/text"
)

type flags struct {
	graph     string
	config    string
	output    string
	delimiter string
	font      string
	verbose   int
	quiet     int
}

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain executes the command line and returns the process exit code.
// Every failure, flag parsing included, is logged to stderr.
func runMain(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		gplot.Logger().Error("gplot failed", "err", err)
		return 1
	}
	return 0
}

// newRootCmd installs a stderr logger at Info straight away; the -v and -q
// counts adjust its level once cobra has parsed them.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	level := new(slog.LevelVar)
	gplot.SetLogger(gplot.NewTextLogger(stderr, level))

	cmd := &cobra.Command{
		Use:   "gplot",
		Short: "Render charts from CSV data",
		Long: `gplot reads a chart file and the CSV data it names and writes the
chart as {output}/{title}.png.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level.Set(logLevel(f.verbose, f.quiet))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(f, stdout)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.graph, "graph", "g", "", "Chart type: scatter")
	fl.StringVarP(&f.config, "config", "c", "", "Chart file (.yaml, .yml or .toml)")
	fl.StringVarP(&f.output, "output", "o", ".", "Directory the PNG is written to")
	fl.StringVar(&f.delimiter, "csv-delimiter", ",", `Single character CSV field separator ("\t" for tab)`)
	fl.StringVar(&f.font, "font", "", "TTF or OTF font file (default: embedded Go Regular)")
	fl.CountVarP(&f.verbose, "verbose", "v", "More log output (-v debug)")
	fl.CountVarP(&f.quiet, "quiet", "q", "Less log output (-q warnings, -qq errors)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func run(f *flags, stdout io.Writer) error {
	if !strings.EqualFold(f.graph, "scatter") {
		return fmt.Errorf("unsupported graph type %q (must be scatter)", f.graph)
	}
	delim, err := csvdata.ParseDelimiter(f.delimiter)
	if err != nil {
		return err
	}

	opts := []scatter.Option{scatter.WithDelimiter(delim)}
	if f.font != "" {
		fs, err := text.NewFontSourceFromFile(f.font)
		if err != nil {
			return err
		}
		opts = append(opts, scatter.WithFontSource(fs))
	}

	path, err := scatter.Build(f.config, f.output, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, path)
	return err
}

// logLevel maps -v and -q counts onto slog levels around Info.
func logLevel(verbose, quiet int) slog.Level {
	l := slog.LevelInfo + slog.Level(4*(quiet-verbose))
	return min(max(l, slog.LevelDebug), slog.LevelError)
}
