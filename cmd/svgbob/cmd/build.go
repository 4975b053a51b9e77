package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/svgbob-go/svgbob"
	"github.com/svgbob-go/svgbob/internal/log"
)

var (
	buildPattern string
	buildOutDir  string
)

// buildCmd batch-converts every file matching a glob pattern into OUTDIR,
// reporting progress with a spinner and colored summaries.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Batch-convert a set of diagram files to SVG",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildPattern, "input", "i", "", "glob pattern of diagram files (required)")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (required)")
	_ = buildCmd.MarkFlagRequired("input")
	_ = buildCmd.MarkFlagRequired("out")
}

func runBuild(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(buildPattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", buildPattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files matched %q", buildPattern)
	}

	if err := os.MkdirAll(buildOutDir, 0o755); err != nil {
		return &outputWriteError{err: fmt.Errorf("creating %s: %w", buildOutDir, err)}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" converting %d diagram(s)", len(matches))
	if !log.Verbose {
		s.Start()
	}

	settings := settingsFromFlags()
	var failed, writeFailed int
	for _, path := range matches {
		s.Suffix = fmt.Sprintf(" converting %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("reading %s: %s", path, err)
			failed++
			continue
		}

		out, legendErr := svgbob.ToSVGWithSettings(string(data), settings)
		if legendErr != nil {
			log.Error("legend in %s: %s (legend styles dropped)", path, legendErr)
		}

		dest := filepath.Join(buildOutDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".svg")
		if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
			log.Error("writing %s: %s", dest, err)
			failed++
			writeFailed++
			continue
		}
	}

	s.Stop()
	if failed > 0 {
		err := fmt.Errorf("%d of %d file(s) failed", failed, len(matches))
		if writeFailed > 0 {
			return &outputWriteError{err: err}
		}
		return err
	}
	log.Success("converted %d diagram(s) into %s", len(matches), buildOutDir)
	return nil
}
