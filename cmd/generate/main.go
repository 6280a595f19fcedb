package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quiz-forge/internal/adapter/quizgen"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate multiple-choice questions from a topics CSV",
	Long: "Reads a CSV with Subject, Subtopic and Description columns, asks the generation API " +
		"for questions on every row and writes them to a CSV in the output directory.",
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "Path to the topics CSV (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output file name (default from config)")
	rootCmd.Flags().IntP("questions", "n", 0, "Questions per row (overrides generation.questions_per_row)")
	rootCmd.Flags().String("config", "", "Path to a config file")
	_ = rootCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("questions"); n > 0 {
		cfg.Generation.QuestionsPerRow = n
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	generator, err := quizgen.NewFromConfig(cfg, nil, log)
	if err != nil {
		return err
	}
	pipeline := service.NewPipelineService(generator, nil, cfg, log)

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	result, err := pipeline.Process(cmd.Context(), input, output)
	if err != nil {
		return err
	}

	printSummary(cmd, result)
	if len(result.Failed) > 0 {
		log.Warn("Some rows produced no questions", zap.Int("failed_rows", len(result.Failed)))
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *domain.RunResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d questions from %d rows to %s\n", len(result.Succeeded), result.RowsRead, result.OutputFile)
	for _, f := range result.Failed {
		fmt.Fprintf(out, "  line %d (%s / %s): %s: %s\n", f.Line, f.Subject, f.Subtopic, f.Code, f.Message)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
