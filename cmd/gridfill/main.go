// Command gridfill consolidates class routines: it finds a teacher's classes
// in one or more source routine documents and fills them into a clean
// template, combining clashes and tagging each entry with its semester.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gridfill"
	"gridfill/blueprint"
	"gridfill/classify"
	"gridfill/docxgrid"
	"gridfill/format"
	"gridfill/htmlgrid"
	"gridfill/model"
	"gridfill/reconcile"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// merge flags
	intoPath  string
	outPath   string
	marker    string
	modelName string
	useGemini bool
	strict    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gridfill",
	Short: "Reconcile timetable grids from Word documents",
	Long: `gridfill reads the first table of each source routine document, finds the
cells assigned to a marker (a teacher's initials), and fills them into the
matching coordinates of a clean template, combining clashes deterministically.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge [source.docx...]",
	Short: "Merge marker classes from source routines into a clean template",
	Long: `Reads each source routine, classifies its cells against the marker, and
writes the reconciled schedule into the template's table.

Example:
  gridfill merge --into clean.docx --out merged.docx --marker RC routine1.docx routine2.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

var blueprintCmd = &cobra.Command{
	Use:   "blueprint [file.docx]",
	Short: "Print the JSON blueprint of a document's first table",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprint,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.gridfill.toml)")

	mergeCmd.Flags().StringVar(&intoPath, "into", "", "clean template document (required)")
	mergeCmd.Flags().StringVar(&outPath, "out", "", "output path for the filled document (required)")
	mergeCmd.Flags().StringVar(&marker, "marker", "", "marker to match, e.g. teacher initials")
	mergeCmd.Flags().StringVar(&modelName, "model", "", "Gemini model name")
	mergeCmd.Flags().BoolVar(&useGemini, "gemini", false, "classify cells with Gemini instead of exact marker matching")
	mergeCmd.Flags().BoolVar(&strict, "strict", false, "treat malformed merges as errors")
	mergeCmd.MarkFlagRequired("into")
	mergeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(blueprintCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if marker == "" {
		marker = cfg.Marker
	}
	if marker == "" {
		return fmt.Errorf("no marker given: pass --marker or set marker in the config file")
	}
	if modelName == "" {
		modelName = cfg.Model
	}

	classifier, err := buildClassifier(ctx)
	if err != nil {
		return err
	}

	var sources []gridfill.Source
	for _, path := range args {
		src, err := loadSource(path)
		if err != nil {
			return fmt.Errorf("source %s: %w", path, err)
		}
		logger.Info("loaded source routine",
			zap.String("path", path),
			zap.Int("rows", src.Snapshot.Rows()),
			zap.Int("cols", src.Snapshot.Cols()),
			zap.String("label", src.Label))
		sources = append(sources, src)
	}

	dest, err := docxgrid.Open(intoPath)
	if err != nil {
		return fmt.Errorf("template %s: %w", intoPath, err)
	}
	destSnap, err := dest.Snapshot()
	if err != nil {
		return fmt.Errorf("template %s: %w", intoPath, err)
	}

	merger := gridfill.From(sources...).Into(destSnap, dest).Classify(classifier)
	if strict {
		merger = merger.Strict()
	}

	report, warnings, err := merger.Run(ctx)
	for _, w := range warnings {
		logger.Warn("extraction warning", zap.String("kind", string(w.Kind)), zap.String("detail", w.Message))
	}
	if err != nil {
		return err
	}

	for _, skipped := range report.Skipped {
		logger.Warn("fill skipped",
			zap.Int("row", skipped.Coord.Row),
			zap.Int("col", skipped.Coord.Col),
			zap.String("reason", skipped.Reason))
	}
	logger.Info("reconciliation complete",
		zap.Int("applied", len(report.Applied)),
		zap.Int("skipped", len(report.Skipped)))

	if err := dest.SaveAs(outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	logger.Info("saved filled routine", zap.String("path", outPath))
	return nil
}

// buildClassifier picks the classifier for the run: exact marker matching by
// default, Gemini when requested. Gemini failures on individual cells are
// treated as no match so one flaky call cannot abort the whole run.
func buildClassifier(ctx context.Context) (reconcile.Classifier, error) {
	if !useGemini {
		return classify.Marker{Token: marker}, nil
	}
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not set")
	}
	gemini, err := classify.NewGemini(ctx, apiKey, modelName, marker)
	if err != nil {
		return nil, err
	}
	return classify.Tolerant(gemini), nil
}

// loadSource opens a source routine and resolves its grid snapshot. Word
// documents also yield the semester label from their body text; HTML
// routines carry no body text, so their label stays empty.
func loadSource(path string) (gridfill.Source, error) {
	switch format.Detect(path) {
	case format.HTML:
		f, err := os.Open(path)
		if err != nil {
			return gridfill.Source{}, err
		}
		defer f.Close()
		snap, err := htmlgrid.Parse(f)
		if err != nil {
			return gridfill.Source{}, err
		}
		return gridfill.Source{Snapshot: snap}, nil
	case format.DOCX:
		doc, err := docxgrid.Open(path)
		if err != nil {
			return gridfill.Source{}, err
		}
		snap, err := doc.Snapshot()
		if err != nil {
			return gridfill.Source{}, err
		}
		return gridfill.Source{Snapshot: snap, Label: docxgrid.SemesterLabel(doc.BodyText())}, nil
	default:
		return gridfill.Source{}, fmt.Errorf("unsupported format (want .docx or .html)")
	}
}

func runBlueprint(cmd *cobra.Command, args []string) error {
	var snap model.GridSnapshot
	switch format.Detect(args[0]) {
	case format.HTML:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		if snap, err = htmlgrid.Parse(f); err != nil {
			return err
		}
	case format.DOCX:
		doc, err := docxgrid.Open(args[0])
		if err != nil {
			return err
		}
		if snap, err = doc.Snapshot(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: unsupported format (want .docx or .html)", args[0])
	}

	bp, warnings, err := blueprint.Extract(snap)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("extraction warning", zap.String("kind", string(w.Kind)), zap.String("detail", w.Message))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(bp)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
