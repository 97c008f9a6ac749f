package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/little-software-engineer/fridge-recipe-finder/config"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/helpers"
)

var starterIngredients = []string{
	"egg", "cheese", "milk", "flour", "butter",
	"tomato", "onion", "garlic", "chicken", "rice",
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (lower(email)) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, strings.ToLower(email), hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	for _, name := range starterIngredients {
		if _, err := db.Exec(`
			INSERT INTO ingredients (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to seed ingredient %q: %v", name, err)
		}
	}
	fmt.Printf("seeded %d starter ingredients\n", len(starterIngredients))
}
