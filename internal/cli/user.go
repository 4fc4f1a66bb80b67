package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/99minutos/users-service/internal/api/metrics"
	"github.com/99minutos/users-service/internal/core/ports"
	"github.com/99minutos/users-service/internal/core/service"
	"github.com/99minutos/users-service/internal/infrastructure/crypto"
	"github.com/99minutos/users-service/internal/pkg/config"
	"github.com/99minutos/users-service/pkg/logger"
)

const userCmdTimeout = 20 * time.Second

func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}
	cmd.AddCommand(newUserAddCmd())
	cmd.AddCommand(newUserListCmd())
	return cmd
}

// withUsers loads configuration, opens the store and hands a UserService to fn.
func withUsers(fn func(ctx context.Context, users ports.UserService) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), userCmdTimeout)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{Level: "warn", Pretty: true})

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	// Command-line runs are not scraped; metrics stay unregistered.
	users := service.NewUserService(st.users, crypto.NewBcryptHasher(cfg.Auth.BcryptCost), metrics.New(nil), zerolog.Nop())
	return fn(ctx, users)
}

func newUserAddCmd() *cobra.Command {
	var username, email, password string
	c := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsers(func(ctx context.Context, users ports.UserService) error {
				u, err := users.Create(ctx, username, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user: %s (id %d)\n", u.Username, u.ID)
				return nil
			})
		},
	}
	c.Flags().StringVar(&username, "username", "", "username")
	c.Flags().StringVar(&email, "email", "", "email")
	c.Flags().StringVar(&password, "password", "", "password")
	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsers(func(ctx context.Context, users ports.UserService) error {
				list, err := users.List(ctx)
				if err != nil {
					return err
				}
				for _, u := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", u.ID, u.Username, u.Email)
				}
				return nil
			})
		},
	}
}
