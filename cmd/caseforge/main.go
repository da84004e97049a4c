package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Caseforge/caseforge-cli/internal/cli"
	internalConfig "github.com/Caseforge/caseforge-cli/internal/config"
	"github.com/Caseforge/caseforge-cli/internal/core/contract"
	"github.com/Caseforge/caseforge-cli/internal/core/generator"
	"github.com/Caseforge/caseforge-cli/internal/core/renderer"
	"github.com/Caseforge/caseforge-cli/internal/core/suite"
	"github.com/Caseforge/caseforge-cli/internal/infra/logger"
	"github.com/Caseforge/caseforge-cli/internal/infra/storage"
)

var (
	version = "dev"
)

var (
	storyText    string
	contractText string
	inputFile    string
	suiteName    string
	exportFormat string
	outPath      string

	debugFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "caseforge",
	Short: "Caseforge - integration test case generator",
	Long: `Caseforge derives structured integration-test scenarios from user
stories and API contracts, and renders them as Jest, Playwright, or
Cypress test skeletons.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hasStory := storyText != ""
		hasContract := contractText != ""
		hasFile := inputFile != ""

		given := 0
		for _, present := range []bool{hasStory, hasContract, hasFile} {
			if present {
				given++
			}
		}
		if given > 1 {
			logger.Error("Only one of --story, --contract, or --file may be given")
			fmt.Fprintln(os.Stderr, "Error: only one of --story, --contract, or --file may be given")
			os.Exit(1)
		}

		format := resolveFormat()

		if given == 0 {
			showSuiteList(format)
			return
		}

		kind := suite.InputUserStory
		text := storyText

		switch {
		case hasContract:
			kind = suite.InputAPIContract
			text = contractText
		case hasFile:
			if err := storage.ValidateInputPath(inputFile); err != nil {
				logger.Error("Input path validation failed", logger.Err(err))
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			normalized, err := contract.NormalizeFile(inputFile)
			if err != nil {
				logger.Error("Failed to read contract file", logger.Err(err))
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			kind = suite.InputAPIContract
			text = normalized
		}

		if suiteName != "" {
			conflict, err := storage.CheckNameConflict(suiteName, "")
			if err != nil {
				logger.Error("Error checking name conflicts", logger.Err(err))
				os.Exit(1)
			}
			if conflict != nil {
				logger.Error("Suite already exists", logger.String("name", suiteName))
				fmt.Fprintf(os.Stderr, "Error: suite %q already exists\n", suiteName)
				os.Exit(1)
			}
		}

		generated := generator.NewSuite(kind, text, suiteName)
		logger.Info("Suite generated",
			logger.String("kind", kind),
			logger.Int("cases", len(generated.Cases)))

		if err := storage.SaveSuite(generated); err != nil {
			logger.Warn("Failed to save suite", logger.Err(err))
		} else if suiteName != "" {
			fmt.Printf("✓ Suite %q saved\n", suiteName)
		}

		if outPath != "" {
			writeBundle(generated, format, outPath)
			return
		}

		showViewer(generated, format)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the test case record",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := suite.TestCaseSchema()
		if err != nil {
			logger.Error("Failed to generate schema", logger.Err(err))
			os.Exit(1)
		}
		fmt.Println(schema)
	},
}

func resolveFormat() string {
	if exportFormat != "" {
		if !renderer.ValidTarget(exportFormat) {
			fmt.Fprintf(os.Stderr, "Error: invalid format %q (jest|playwright|cypress)\n", exportFormat)
			os.Exit(1)
		}
		return exportFormat
	}

	if env := internalConfig.GetEnv("format"); env != "" && renderer.ValidTarget(env) {
		return env
	}

	cfg, err := internalConfig.Load()
	if err != nil || !renderer.ValidTarget(cfg.DefaultFormat) {
		return renderer.TargetJest
	}
	return cfg.DefaultFormat
}

// writeBundle exports the formatted cases. "-" writes the bundle to
// stdout; a directory path gets the format-specific artifact name.
func writeBundle(s *suite.Suite, format, out string) {
	bundle := renderer.ExportAll(s.Cases, format)

	if out == "-" {
		fmt.Println(bundle)
		return
	}

	target := out
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		target = filepath.Join(out, renderer.ArtifactName(format))
	}

	if err := os.WriteFile(target, []byte(bundle), 0644); err != nil {
		logger.Error("Failed to write export bundle", logger.Err(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Exported %d cases to %s\n", len(s.Cases), target)
}

func showSuiteList(format string) {
	suites, err := storage.ListNamedSuites()
	if err != nil {
		logger.Error("Error loading suites", logger.Err(err))
		os.Exit(1)
	}

	listModel := cli.NewSuiteListModel(suites)
	p := tea.NewProgram(listModel)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("Error running suite list", logger.Err(err))
		os.Exit(1)
	}

	result, ok := finalModel.(cli.SuiteListModel)
	if !ok {
		logger.Error("Unexpected model type")
		os.Exit(1)
	}

	selected := result.GetSelectedSuite()
	if selected == nil {
		os.Exit(0)
	}

	if err := storage.SaveSuite(selected); err != nil {
		logger.Warn("Failed to update suite timestamps", logger.Err(err))
	}

	showViewer(selected, format)
}

func showViewer(s *suite.Suite, format string) {
	viewerModel := cli.NewViewerModel(s, format)
	p := tea.NewProgram(viewerModel)

	if _, err := p.Run(); err != nil {
		logger.Error("Error running case viewer", logger.Err(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&storyText, "story", "s", "", "User story to generate test cases from")
	rootCmd.Flags().StringVarP(&contractText, "contract", "c", "", "API contract (JSON or text) to generate test cases from")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to an API contract file (JSON, YAML, or text)")
	rootCmd.Flags().StringVarP(&suiteName, "name", "n", "", "Suite name for saving/loading")

	rootCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (jest|playwright|cypress)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the export bundle to a file or directory ('-' for stdout)")

	rootCmd.PersistentFlags().StringVar(&debugFilePath, "debug-file", "", "Path to debug log file (enables file logging)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogger()
	}

	rootCmd.AddCommand(schemaCmd)
	rootCmd.Version = version
}

func main() {
	_ = godotenv.Load()

	if err := storage.CleanupTempSuites(); err != nil {
		logger.Warn("Failed to clean up temporary suites", logger.Err(err))
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(1)
	}
	if debugFilePath != "" {
		logger.Close()
	}
}

func initLogger() {
	if debugFilePath != "" {
		if err := logger.Init(true, debugFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger.Info("Caseforge starting", logger.String("log_file", debugFilePath), logger.Bool("debug", true))
	}
}
