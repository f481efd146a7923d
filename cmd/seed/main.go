package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/form-platform/internal/api/middleware"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/config/db"
	"github.com/linskybing/form-platform/internal/migrations"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/internal/seed"
)

func main() {
	file := flag.String("file", "seed.yaml", "fixture file with roles and users")
	tokenFor := flag.String("token-for", "", "print a development token for this username")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadConfig()
	middleware.Init()
	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	fixtures, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}
	repos := repository.NewRepositories(db.DB)
	users, err := seed.Apply(repos, fixtures)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Printf("Seeded %d roles and %d users", len(fixtures.Roles), len(users))

	if *tokenFor == "" {
		return
	}
	for _, u := range users {
		if u.Username != *tokenFor {
			continue
		}
		role := ""
		if u.Role != nil {
			role = u.Role.Name
		}
		token, err := middleware.GenerateToken(u.ID, u.Username, role, u.RoleID, *ttl)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Println(token)
		return
	}
	log.Fatalf("User %s is not in the fixture file", *tokenFor)
}
