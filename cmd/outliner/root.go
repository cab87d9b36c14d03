package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/internal/jsonio"
	"github.com/tsawler/outliner/internal/logging"
)

var (
	maxPages int
	timeout  time.Duration
	outPath  string
	compact  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner [file.pdf | directory]...",
	Short: "Extract structured outlines from PDF documents",
	Long: `Outliner reads PDF documents and emits their structure as JSON: the
document title plus H1/H2/H3 headings, each with a zero-based page number.

Given a single file, the outline is written to stdout (or --out). Given a
directory, every .pdf inside is processed and a .json file is written next
to each input; a failure in one document never stops the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxPages, "max-pages", outliner.DefaultMaxPages,
		"maximum number of pages to process per document")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", outliner.DefaultTimeout,
		"wall-clock budget per document; on expiry a partial outline is returned")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "",
		"output file (single input) or directory (batch)")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false,
		"emit compact JSON instead of indented")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	viper.SetEnvPrefix("OUTLINER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"max-pages", "timeout", "out", "compact", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Environment values win over defaults but lose to explicit flags
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("max-pages") {
			maxPages = viper.GetInt("max-pages")
		}
		if !cmd.Flags().Changed("timeout") {
			timeout = viper.GetDuration("timeout")
		}
		if !cmd.Flags().Changed("out") {
			outPath = viper.GetString("out")
		}
		if !cmd.Flags().Changed("compact") {
			compact = viper.GetBool("compact")
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = viper.GetBool("verbose")
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no PDF files found in %s", strings.Join(args, ", "))
	}

	single := len(inputs) == 1 && !isDir(args[0])

	failures := 0
	for _, input := range inputs {
		if err := processDocument(cmd, logger, input, single); err != nil {
			// One bad document must not stop the batch
			logger.Error("extraction failed", zap.String("file", input), zap.Error(err))
			failures++
			if single {
				return err
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(inputs))
	}
	return nil
}

// processDocument extracts one document and writes its outline. In single
// mode the JSON goes to stdout unless --out names a file; in batch mode it
// goes to a .json file next to the input (or under the --out directory).
func processDocument(cmd *cobra.Command, logger *zap.Logger, input string, single bool) error {
	start := time.Now()

	outline, warnings, err := outliner.Open(input).
		MaxPages(maxPages).
		Timeout(timeout).
		OutlineContext(cmd.Context())
	if err != nil {
		return err
	}

	for _, w := range warnings {
		logger.Warn(w.Message,
			zap.String("file", input),
			zap.Stringer("kind", w.Kind),
			zap.Int("page", w.Page))
	}

	data, err := encode(outline)
	if err != nil {
		return err
	}

	logger.Info("extracted outline",
		zap.String("file", input),
		zap.String("title", outline.Title),
		zap.Int("headings", outline.HeadingCount()),
		zap.Duration("elapsed", time.Since(start)))

	if single && outPath == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return os.WriteFile(outputFile(input, single), append(data, '\n'), 0o644)
}

// encode serializes the outline per the --compact flag
func encode(v any) ([]byte, error) {
	if compact {
		return jsonio.Marshal(v)
	}
	return jsonio.MarshalIndent(v)
}

// outputFile decides where a document's outline is written
func outputFile(input string, single bool) string {
	if single && outPath != "" {
		return outPath
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".json"
	if outPath != "" {
		return filepath.Join(outPath, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

// expandInputs resolves the command arguments to a list of PDF files.
// Directory arguments contribute every .pdf they directly contain.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		if !isDir(arg) {
			inputs = append(inputs, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				inputs = append(inputs, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return inputs, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
