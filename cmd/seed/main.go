package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"forumhub/internal/config"
	"forumhub/internal/domain/models"
	"forumhub/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear all topics and answers (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *clearData {
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	// Exit early if schema-only mode
	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	// Exit early if clear-data mode (just clear and exit)
	if *clearData {
		log.Println("🧹 Clearing existing topics and answers...")
		if err := clearForumData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	// Create repositories (seeding writes through storage directly - the
	// service layer would call out to the user directory for every write)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	courseRepo := postgres.NewCourseRepository(repoConfig)
	topicRepo := postgres.NewTopicRepository(repoConfig)
	answerRepo := postgres.NewAnswerRepository(repoConfig)

	// Clear existing data
	log.Println("⚠️  Clearing existing topics and answers...")
	if err := clearForumData(ctx, pool, tables); err != nil {
		log.Printf("Warning: Could not clear data: %v", err)
	}

	// Seed courses
	log.Println("📚 Seeding courses...")
	courses := getSeedCourses()
	courseIDs := make(map[string]int64, len(courses))
	for i, course := range courses {
		if err := courseRepo.Create(ctx, course); err != nil {
			log.Printf("❌ Failed to create course '%s': %v", course.Name, err)
			continue
		}
		courseIDs[course.Name] = course.ID
		log.Printf("✅ Created course %d/%d: %s (ID: %d)", i+1, len(courses), course.Name, course.ID)
	}

	// Seed topics and answers
	log.Println("📝 Seeding topics and answers...")
	topics := getSeedTopics(courseIDs)
	for i, topicData := range topics {
		topic := topicData.topic
		topic.CreatedAt = time.Now()
		if err := topicRepo.Create(ctx, topic); err != nil {
			log.Printf("❌ Failed to create topic '%s': %v", topic.Title, err)
			continue
		}
		log.Printf("✅ Created topic %d/%d: %s (ID: %d)", i+1, len(topics), topic.Title, topic.ID)

		for _, answer := range topicData.answers {
			answer.TopicID = topic.ID
			answer.CreatedAt = time.Now()
			if err := answerRepo.Create(ctx, answer); err != nil {
				log.Printf("❌ Failed to create answer on topic %d: %v", topic.ID, err)
			}
		}
	}

	log.Println("🎉 Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Create courses table
	createCourses := `
		CREATE TABLE IF NOT EXISTS ` + tables.Courses + ` (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, createCourses); err != nil {
		return err
	}

	// Create topics table. author_id is nullable: when an author account is
	// removed from the user directory the column is set NULL and the topic
	// becomes orphaned.
	createTopics := `
		CREATE TABLE IF NOT EXISTS ` + tables.Topics + ` (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			title TEXT NOT NULL,
			question TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'UNSOLVED',
			author_id BIGINT,
			course_id BIGINT NOT NULL REFERENCES ` + tables.Courses + `(id),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createTopics); err != nil {
		return err
	}

	// Create answers table
	createAnswers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Answers + ` (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			solution TEXT NOT NULL,
			author_id BIGINT NOT NULL,
			topic_id BIGINT NOT NULL REFERENCES ` + tables.Topics + `(id) ON DELETE CASCADE,
			is_best BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createAnswers); err != nil {
		return err
	}

	// Create indexes. The partial unique index enforces at most one best
	// answer per topic even under concurrent mark requests.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `topics_course_id ON ` + tables.Topics + `(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `answers_topic_id ON ` + tables.Answers + `(topic_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_` + tablePrefix + `answers_best_unique ON ` + tables.Answers + `(topic_id) WHERE is_best`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Answers,
		tables.Topics,
		tables.Courses,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// clearForumData clears all topics and answers (answers cascade from topics)
func clearForumData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Topics); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Courses); err != nil {
		return err
	}
	return nil
}

func getSeedCourses() []*models.Course {
	return []*models.Course{
		{Name: "Spring Boot Fundamentals", Category: "BACKEND"},
		{Name: "Go Microservices", Category: "BACKEND"},
		{Name: "React from Scratch", Category: "FRONTEND"},
		{Name: "Kubernetes in Practice", Category: "DEVOPS"},
		{Name: "Applied Machine Learning", Category: "DATA_SCIENCE"},
	}
}

type seedTopic struct {
	topic   *models.Topic
	answers []*models.Answer
}

func getSeedTopics(courseIDs map[string]int64) []seedTopic {
	author1 := int64(101)
	author2 := int64(102)

	return []seedTopic{
		{
			topic: &models.Topic{
				Title:    "Connection pool exhausted under load",
				Question: "Our service runs out of database connections after a few minutes of sustained traffic. We already raised max_connections. What else should we check?",
				Status:   models.TopicUnsolved,
				AuthorID: &author1,
				CourseID: courseIDs["Go Microservices"],
			},
			answers: []*models.Answer{
				{
					Solution: "Make sure every query path releases its connection. A transaction that is never committed or rolled back keeps its connection checked out forever.",
					AuthorID: author2,
				},
				{
					Solution: "Also check your pool limits against the database max_connections - pools across replicas add up.",
					AuthorID: author1,
				},
			},
		},
		{
			topic: &models.Topic{
				Title:    "When should a handler return 422 instead of 400?",
				Question: "The request parses fine but violates a business rule. Is that a 400 or a 422?",
				Status:   models.TopicUnsolved,
				AuthorID: &author2,
				CourseID: courseIDs["Spring Boot Fundamentals"],
			},
			answers: []*models.Answer{
				{
					Solution: "400 for malformed or syntactically invalid input, 422 for well-formed input that the domain rejects.",
					AuthorID: author1,
				},
			},
		},
		{
			topic: &models.Topic{
				Title:    "useEffect runs twice in development",
				Question: "My data fetch fires twice on mount. Is this a bug in my code?",
				Status:   models.TopicUnsolved,
				AuthorID: &author1,
				CourseID: courseIDs["React from Scratch"],
			},
			answers: nil,
		},
	}
}
