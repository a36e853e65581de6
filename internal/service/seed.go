package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
)

// Fixed first-run accounts, one per role. Seeded only when the users
// collection is empty; operators are expected to rotate the passwords on
// first login.
var seedAccounts = []struct {
	username string
	password string
	role     string
}{
	{"Omicron", "Omicron13.01", model.RoleSuper},
	{"Admin", "Admin.2025-0101", model.RoleAdmin},
	{"Vendedor", "venta1.2025", model.RoleVendedor},
}

// SeedUsers creates the initial accounts on an empty database. Runs at boot,
// after the Mongo connection is validated.
func SeedUsers(ctx context.Context, repo repository.UserRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("seed: users already exist, skipping")
		return nil
	}

	log.Info().Msg("seed: creating initial users")
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:     acc.username,
			PasswordHash: string(hash),
			Role:         acc.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
	}
	log.Info().Int("users", len(seedAccounts)).Msg("seed: initial users created")
	return nil
}
