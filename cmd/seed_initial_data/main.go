package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/trivia_seed.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", seedFilePath))
	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Seed data loaded", zap.Int("categories", len(seedCategories)))

	for _, sc := range seedCategories {
		if err := seedCategoryData(ctx, db, log, sc); err != nil {
			log.Error("Error seeding category, transaction rolled back",
				zap.String("category", sc.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

// seedCategoryData inserts one category and its questions in a single
// transaction. A category that already exists is reused, so the seeder
// is safe to run more than once.
func seedCategoryData(ctx context.Context, db *sqlx.DB, log *zap.Logger, sc seedmodels.SeedCategory) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var categoryID int64
	err = tx.QueryRowxContext(ctx,
		`SELECT id FROM categories WHERE type = $1`, sc.Name).Scan(&categoryID)
	if err != nil {
		err = tx.QueryRowxContext(ctx,
			`INSERT INTO categories (type) VALUES ($1) RETURNING id`, sc.Name).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("failed to insert category %q: %w", sc.Name, err)
		}
	}

	inserted := 0
	for _, q := range sc.Questions {
		var exists bool
		err = tx.QueryRowxContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM questions WHERE question = $1 AND category_id = $2)`,
			q.Question, categoryID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check question existence: %w", err)
		}
		if exists {
			continue
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (question, answer, category_id, difficulty) VALUES ($1, $2, $3, $4)`,
			q.Question, q.Answer, categoryID, q.Difficulty)
		if err != nil {
			return fmt.Errorf("failed to insert question %q: %w", q.Question, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seeded category",
		zap.String("category", sc.Name),
		zap.Int64("category_id", categoryID),
		zap.Int("questions_inserted", inserted),
	)
	return nil
}
