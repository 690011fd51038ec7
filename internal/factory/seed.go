package factory

import (
	"context"
	"errors"

	"github.com/snakesocial/snakesocial-go/internal/model"
)

// demoUsers are the demo accounts created by SeedDemoUsers
var demoUsers = []struct {
	username string
	email    string
	password string
}{
	{"SnakeMaster", "master@snake.io", "password"},
	{"PixelViper", "viper@snake.io", "password"},
}

// SeedDemoUsers creates a couple of demo accounts so a fresh deployment has
// something to log in with. Seeding is always explicit: main calls this
// behind a flag, and tests construct their own fixtures instead.
// Already-existing demo accounts are left alone.
func SeedDemoUsers(ctx context.Context, app *App) error {
	for _, u := range demoUsers {
		_, err := app.AuthService.Signup(ctx, u.username, u.email, u.password)
		if err != nil && !errors.Is(err, model.ErrEmailTaken) && !errors.Is(err, model.ErrUsernameTaken) {
			return err
		}
	}
	return nil
}
