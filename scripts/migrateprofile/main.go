package main

import (
	"log"

	"skilltree/config"
	"skilltree/database"
)

// Adds the profile columns to databases created before they existed.
// sqlite has no ADD COLUMN IF NOT EXISTS, so a duplicate-column error
// on re-run is expected and swallowed.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	if err := db.Exec("ALTER TABLE users ADD COLUMN bio VARCHAR").Error; err != nil {
		log.Printf("bio column likely exists: %v", err)
	} else {
		log.Println("Added bio column to users.")
	}

	if err := db.Exec("ALTER TABLE users ADD COLUMN avatar_style VARCHAR DEFAULT 'adventurer'").Error; err != nil {
		log.Printf("avatar_style column likely exists: %v", err)
	} else {
		log.Println("Added avatar_style column to users.")
	}

	log.Println("Migration complete.")
}
