// Package cmd implements the svgbob command tree: a root command that
// renders one diagram, and a build subcommand for batch conversion. A
// Cobra root with persistent flags, subcommands registered in init, and an
// Execute() that is the sole os.Exit boundary.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/svgbob-go/svgbob"
	"github.com/svgbob-go/svgbob/internal/log"
)

// outputWriteError marks a failure writing the rendered SVG, which maps to
// exit code 2; every other failure maps to exit code 1.
type outputWriteError struct{ err error }

func (e *outputWriteError) Error() string { return e.err.Error() }
func (e *outputWriteError) Unwrap() error { return e.err }

var (
	background  string
	fillColor   string
	fontFamily  string
	fontSize    float64
	strokeWidth float64
	scale       float64
	literal     bool
	outPath     string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "svgbob [INPUT]",
	Short: "Render ASCII/Unicode box-drawing diagrams to SVG",
	Long: `svgbob recognizes ASCII and Unicode box-drawing diagrams and renders
them as SVG. Without INPUT, the diagram is read from stdin; with -s, INPUT
is the diagram itself rather than a path.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Verbose = verbose
	},
	RunE: runRoot,
}

// Execute runs the root command (child commands are registered in init).
// It is the only place in this module that calls os.Exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%s", err)
		var writeErr *outputWriteError
		if asOutputWriteError(err, &writeErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func asOutputWriteError(err error, target **outputWriteError) bool {
	for err != nil {
		if oe, ok := err.(*outputWriteError); ok {
			*target = oe
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.Flags().StringVar(&background, "background", "white", "background color")
	rootCmd.Flags().StringVar(&fillColor, "fill-color", "black", "fill color for solid shapes")
	rootCmd.Flags().StringVar(&fontFamily, "font-family", "arial", "CSS font-family")
	rootCmd.Flags().Float64Var(&fontSize, "font-size", 14, "font size in points")
	rootCmd.Flags().Float64Var(&strokeWidth, "stroke-width", 2, "stroke width")
	rootCmd.Flags().Float64Var(&scale, "scale", 8, "coordinate scale factor")
	rootCmd.Flags().BoolVarP(&literal, "string", "s", false, "treat INPUT as the diagram itself, not a path")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(buildCmd)
}

func settingsFromFlags() svgbob.Settings {
	s := svgbob.DefaultSettings()
	s.Background = background
	s.FillColor = fillColor
	s.FontFamily = fontFamily
	s.FontSize = fontSize
	s.StrokeWidth = strokeWidth
	s.Scale = scale
	return s
}

func runRoot(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	out, legendErr := svgbob.ToSVGWithSettings(input, settingsFromFlags())
	if legendErr != nil {
		log.Error("legend: %s (legend styles dropped, diagram still rendered)", legendErr)
	}

	if err := writeOutput(out); err != nil {
		return &outputWriteError{err: err}
	}
	return nil
}

func readInput(args []string) (string, error) {
	if literal {
		if len(args) == 0 {
			return "", fmt.Errorf("-s requires INPUT")
		}
		return args[0], nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeOutput(svg string) error {
	if outPath == "" {
		_, err := fmt.Print(svg)
		return err
	}
	return os.WriteFile(outPath, []byte(svg), 0o644)
}
