package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fintrack/expense-service/config"
	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	// Ensure base roles exist
	roleIDs := map[string]string{}
	for _, name := range []string{entity.RoleUser, entity.RoleAdmin} {
		var roleID string
		if err := db.QueryRow(`
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name).Scan(&roleID); err != nil {
			log.Fatalf("failed to upsert role %s: %v", name, err)
		}
		roleIDs[name] = roleID
	}
	fmt.Printf("roles ensured: user=%s admin=%s\n", roleIDs[entity.RoleUser], roleIDs[entity.RoleAdmin])

	// Demo user gets both roles
	for _, roleID := range roleIDs {
		if _, err := db.Exec(`
			INSERT INTO user_roles (user_id, role_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, id, roleID); err != nil {
			log.Fatalf("failed to assign role: %v", err)
		}
	}
	fmt.Println("assigned roles to seeded user (if not already)")
}
