package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mindfuly/mindfuly/config"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seeds := []struct {
		name     string
		email    string
		password string
		tier     int
	}{
		{"demo", "demo@mindfuly.app", "password123", 1},
		{"admin", "admin@mindfuly.app", "password123", 3},
	}

	for _, s := range seeds {
		hash, err := helpers.HashPassword(s.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		var id int64
		err = db.QueryRow(`
			INSERT INTO users (name, email, hashed_password, tier)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, s.name, s.email, hash, s.tier).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", s.name, err)
		}
		fmt.Printf("seeded user: id=%d name=%s email=%s password=%s tier=%d\n", id, s.name, s.email, s.password, s.tier)
	}
}
