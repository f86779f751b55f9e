// Command seed loads demo users, profiles and interaction history into
// the database. It is destructive: existing rows are removed first so
// repeated runs converge on the same state.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spotlight-dating/spotlight-backend/internal/config"
	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/database"
	"github.com/spotlight-dating/spotlight-backend/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password"

type seedProfile struct {
	name           string
	age            int
	genderIdentity string
	height         int
	incomeBracket  string
	description    string
}

var demoProfiles = map[string][]seedProfile{
	"demo@example.com": {
		{"Alex", 28, "non-binary", 175, "50k-75k",
			"Adventure seeker, coffee enthusiast, and dog lover. Always up for trying new restaurants or exploring hiking trails."},
		{"Jordan", 25, "male", 182, "75k-100k",
			"Software engineer by day, aspiring chef by night. Bonus points if you can appreciate a good pun!"},
		{"Sam", 30, "female", 168, "30k-50k",
			"Fitness enthusiast and yoga instructor. Passionate about wellness and mindful living."},
	},
	"test@example.com": {
		{"Taylor", 27, "genderqueer", 172, "100k-150k",
			"Creative soul with a passion for photography and art. Let's explore together!"},
		{"Morgan", 29, "male", 178, "150k-200k",
			"Entrepreneur with a love for travel. I've been to 35 countries and counting!"},
		{"Casey", 26, "female", 165, "50k-75k",
			"Music lover and aspiring guitarist. If you're into indie rock or jazz, we'll get along great!"},
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// Wipe existing data; interactions and images cascade with profiles.
	if _, err := db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return err
	}

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	interactionRepo := postgres.NewInteractionRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var firstProfiles []*domain.Profile
	for email, seeds := range demoProfiles {
		user := &domain.User{Email: email, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		fmt.Printf("created user %s\n", user.Email)

		for i, s := range seeds {
			s := s
			p := &domain.Profile{
				UserID:         &user.ID,
				Name:           s.name,
				Age:            s.age,
				Description:    &s.description,
				Height:         &s.height,
				IncomeBracket:  &s.incomeBracket,
				GenderIdentity: &s.genderIdentity,
				Active:         true,
			}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("seed profile %s: %w", s.name, err)
			}
			if err := profileRepo.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("created profile %s (%d) for %s\n", p.Name, p.Age, user.Email)
			if i == 0 {
				firstProfiles = append(firstProfiles, p)
			}
		}
	}

	// Give each user's first profile some swipe history so analytics has
	// something to show out of the box.
	for _, p := range firstProfiles {
		for i := 0; i < 10; i++ {
			action := domain.SwipeRight
			if rand.Intn(2) == 0 {
				action = domain.SwipeLeft
			}
			timeSpent := 5 + rand.Intn(55)
			scrollDepth := rand.Intn(101)
			imageIndex := rand.Intn(3)

			record, err := domain.NewInteractionRecord(
				p.ID, uuid.NewString(), action,
				&timeSpent, &scrollDepth, &imageIndex,
			)
			if err != nil {
				return err
			}
			if err := interactionRepo.Create(ctx, record); err != nil {
				return err
			}
		}
		fmt.Printf("created 10 interactions for profile %s\n", p.Name)
	}

	return nil
}
