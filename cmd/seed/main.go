package main

import (
	"context"
	"errors"
	"log"

	"github.com/otaviobrantes/lumen/internal/catalog"
	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/pkg/config"
	"github.com/otaviobrantes/lumen/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the built-in catalog and, when DEMO_MODE is on, a demo admin
// account. The API itself never special-cases demo credentials; this is
// the only place they exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	videoRepo := persistent.NewVideoRepository(db)
	profileRepo := persistent.NewProfileRepository(db)

	count, err := videoRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count videos: %v", err)
	}

	if count == 0 {
		for _, video := range catalog.FallbackVideos {
			seeded := *video
			seeded.ID = "" // repo assigns fresh ids on insert
			if err := videoRepo.Create(ctx, &seeded); err != nil {
				log.Fatalf("Failed to seed video %q: %v", video.Title, err)
			}
		}
		log.Printf("Seeded %d videos", len(catalog.FallbackVideos))
	} else {
		log.Printf("Catalog already has %d videos, skipping", count)
	}

	if cfg.DemoMode {
		seedDemoAdmin(ctx, cfg, profileRepo)
	}
}

func seedDemoAdmin(ctx context.Context, cfg *config.Config, profileRepo persistent.ProfileRepository) {
	if cfg.DemoAdminEmail == "" || cfg.DemoAdminPassword == "" {
		log.Fatal("DEMO_MODE requires DEMO_ADMIN_EMAIL and DEMO_ADMIN_PASSWORD")
	}

	_, err := profileRepo.GetByEmail(ctx, cfg.DemoAdminEmail)
	if err == nil {
		log.Printf("Demo admin %s already exists, skipping", cfg.DemoAdminEmail)
		return
	}
	if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("Failed to look up demo admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	admin := &entity.Profile{
		Email:        cfg.DemoAdminEmail,
		Password:     string(hash),
		Role:         entity.RoleAdmin,
		Subscription: entity.SubscriptionActive,
	}
	if err := profileRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create demo admin: %v", err)
	}

	log.Printf("Seeded demo admin %s", cfg.DemoAdminEmail)
}
