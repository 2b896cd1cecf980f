package main

import (
	"log"

	"filmoteka/internal/config"
	"filmoteka/internal/database"
	"filmoteka/internal/repository"
)

// Seeds the genre and MPA rating catalogs. The service itself never mutates
// them, so this is the only place reference rows come from.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Seeding genre and MPA catalogs...")
	if err := repository.SeedCatalog(db); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	log.Println("Done")
}
