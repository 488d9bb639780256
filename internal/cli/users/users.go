package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/models"
)

type UserAddCmd struct {
	Email string `arg:"" help:"Email address for the new user."`
}

func (c *UserAddCmd) Run(ctx *cli.Context) error {
	user := models.User{
		ID:        uuid.New().String(),
		Email:     c.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := ctx.Store.AddUser(user); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	fmt.Printf("Added user %s (ID: %s)\n", user.Email, user.ID)
	fmt.Printf("Set GOALTRACK_USER=%s to act as this user from the CLI.\n", user.ID)
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *cli.Context) error {
	users, err := ctx.Store.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users yet. Add one with: goaltrack user add <email>")
		return nil
	}

	fmt.Println("Users:")
	for _, user := range users {
		marker := " "
		if user.ID == ctx.Config.DefaultUserID {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s\n", marker, user.ID, user.Email)
	}
	return nil
}
