package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/careerpilot/internal/config"
	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/llm"
	"github.com/jonathan/careerpilot/internal/prompts"
)

var weeklyInsightsConcurrency int

var weeklyInsightsCmd = &cobra.Command{
	Use:   "weekly-insights",
	Short: "Generate weekly career insights for all users",
	Long: `Iterates over all registered users and generates a personalized
weekly insight for each, stored as a career insight document. Failures
for individual users are logged and skipped.`,
	RunE: runWeeklyInsights,
}

func init() {
	weeklyInsightsCmd.Flags().IntVar(&weeklyInsightsConcurrency, "concurrency", 4, "Number of users processed in parallel")
	rootCmd.AddCommand(weeklyInsightsCmd)
}

func runWeeklyInsights(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	generator, err := llm.NewGeminiGenerator(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create text generator: %w", err)
	}
	defer generator.Close()

	users, err := database.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	log.Printf("[weekly-insights] generating insights for %d users", len(users))

	template, err := prompts.Get("generation.json", "weekly_insights")
	if err != nil {
		return fmt.Errorf("failed to load prompt: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(weeklyInsightsConcurrency)

	for _, user := range users {
		user := user
		g.Go(func() error {
			if err := generateUserInsight(gctx, database, generator, template, user); err != nil {
				// Per-user failures are logged and skipped
				log.Printf("[weekly-insights] user %s: %v", user.ID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("[weekly-insights] done")
	return nil
}

func generateUserInsight(ctx context.Context, database *db.DB, generator llm.TextGenerator, template string, user db.User) error {
	prompt := prompts.Format(template, map[string]string{
		"TargetRole": user.TargetRole,
		"Industry":   user.Industry,
		"Location":   user.Location,
		"Skills":     strings.Join(user.Skills, ", "),
	})

	content, err := generator.Generate(ctx, prompt, 1500)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	_, err = database.CreateInsight(ctx, db.CareerInsight{
		UserID:      user.ID,
		InsightType: "weekly",
		Title:       "Weekly career insights",
		Content:     content,
	})
	if err != nil {
		return fmt.Errorf("failed to store insight: %w", err)
	}
	return nil
}
