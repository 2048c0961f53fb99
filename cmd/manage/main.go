package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"smart-sales-api/internal/config"
	"smart-sales-api/internal/repository"
	"smart-sales-api/internal/service"
	"smart-sales-api/pkg/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "manage",
		Short:        "Administrative commands for the Smart Sales API",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newCreateSuperuserCmd(),
		newChangePasswordCmd(),
		newFlushExpiredTokensCmd(),
	)
	return root
}

// connect loads the configuration and opens the database
func connect() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.ConnectDB(cfg.DatabaseURL, cfg.DBLogLevel)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Println("✅ Migrations applied")
			return nil
		},
	}
}

func newCreateSuperuserCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create an active staff superuser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			db, err := connect()
			if err != nil {
				return err
			}

			users := service.NewUserService(repository.NewUserRepo(db))
			user, err := users.CreateSuperuser(cmd.Context(), username, email, password)
			if err != nil {
				return describe(err)
			}
			log.Printf("✅ Superuser created: %s (%s)", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password; read from stdin when omitted")
	cmd.MarkFlagRequired("username")
	return cmd
}

func newChangePasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "changepassword <username>",
		Short: "Set a new password for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			db, err := connect()
			if err != nil {
				return err
			}

			users := service.NewUserService(repository.NewUserRepo(db))
			if err := users.ChangePassword(cmd.Context(), args[0], password); err != nil {
				return describe(err)
			}
			log.Printf("✅ Password changed successfully for user '%s'", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "new password; read from stdin when omitted")
	return cmd
}

func newFlushExpiredTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flushexpiredtokens",
		Short: "Delete blacklist entries whose tokens have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}

			n, err := repository.NewTokenRepo(db).DeleteExpired(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			log.Printf("✅ Removed %d expired token(s)", n)
			return nil
		},
	}
}

func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// describe flattens validation messages into the command error
func describe(err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) && len(svcErr.Messages) > 0 {
		return fmt.Errorf("%s: %s", svcErr.Message, strings.Join(svcErr.Messages, " "))
	}
	return err
}
