package main

import (
	"flag"
	"log"
	"os"

	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back the meetings schema instead of applying it")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	log.Println("✅ Database connected successfully")

	if *down {
		n, err := database.Rollback(db, cfg.Database.Driver)
		if err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
		log.Printf("✅ Rolled back %d migration(s)", n)
		os.Exit(0)
	}

	log.Println("🔄 Applying migrations...")
	n, err := database.Migrate(db, cfg.Database.Driver)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}
