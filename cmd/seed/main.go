// Command seed loads the locations table, the category tree and a few sample
// products. With ADMIN_EMAIL and ADMIN_PASSWORD set it also creates an admin user.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/config"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/database"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
)

func main() {
	kind := flag.String("type", "all", "what to seed: all, locations, categories or products")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	categories := repository.NewCategoryRepo(db)
	seeder := &database.Seeder{
		Locations:  repository.NewLocationRepo(db),
		Categories: categories,
		Products:   repository.NewProductRepo(db),
	}
	if err := seeder.Run(ctx, *kind); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		auth := services.NewAuthService(repository.NewUserRepo(db), utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL), cfg.BcryptCost)
		admin, err := auth.Bootstrap(ctx, services.RegisterInput{
			FirstName: "Store",
			LastName:  "Admin",
			Email:     cfg.AdminEmail,
			Phone:     "0000000000",
			Password:  cfg.AdminPassword,
			Address:   "-",
			City:      "-",
			State:     "-",
			Zipcode:   "000000",
		}, models.RoleAdmin)
		switch {
		case errors.Is(err, repository.ErrConflict):
			log.Printf("Admin %s already exists", cfg.AdminEmail)
		case err != nil:
			log.Fatal("Failed to create admin: ", err)
		default:
			log.Printf("Admin created: %s", admin.Email)
		}
	}

	log.Println("Seeding complete")
}
