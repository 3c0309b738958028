package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/heroes/migrations"
	"github.com/JaimeStill/hero-catalog/pkg/database"
	"github.com/JaimeStill/hero-catalog/pkg/logging"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const envDatabaseURL = "DATABASE_URL"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string (overrides configuration)")
		all     = flag.Bool("all", false, "Run all tasks")
		task    = flag.String("task", "", "Run a single task by name")
		file    = flag.String("file", "", "External seed file (overrides embedded)")
		list    = flag.Bool("list", false, "List available tasks")
		migrate = flag.Bool("migrate", false, "Apply schema migrations before running tasks")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available tasks:")
		for _, t := range listTasks() {
			fmt.Printf("  - %s: %s\n", t.Name(), t.Description())
		}
		return
	}

	var names []string
	switch {
	case *all:
		names = taskNames(listTasks())
	case *task != "":
		names = []string{*task}
	default:
		fmt.Println("usage: maintenance [-dsn <connection-string>] [-all|-task <name>] [-file <path>] [-migrate] [-list]")
		flag.PrintDefaults()
		return
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("dotenv load failed:", err)
	}

	if *dsn != "" {
		os.Setenv(envDatabaseURL, *dsn)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}
	logger := logging.New(&cfg.Logging)

	if *file != "" {
		if t, ok := getTask("seed"); ok {
			t.(*SeedTask).SetFile(*file)
		}
	}

	db, err := sql.Open(database.DriverName, cfg.Database.Dsn())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *migrate {
		if err := database.Migrate(&cfg.Database, migrations.FS, migrations.Dir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	results, err := runTasks(ctx, db, names...)
	if err != nil {
		log.Fatalf("maintenance failed: %v", err)
	}

	for _, r := range results {
		logger.Info("task completed", "task", r.Task, "rows", r.Rows)
	}
}
