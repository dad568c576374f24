package main

import (
	"fmt"
	stdLog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Astemirdum/library-membership/library/app"
	"github.com/Astemirdum/library-membership/library/config"
)

//go:generate swag init -d ../.. -g cmd/library/main.go -o ../../swagger --ot go

// @title Library membership API
// @version 1.0
// @description Books, copies, customers, members and memberships with soft delete.
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}

	root := &cobra.Command{
		Use:           "library",
		Short:         "Library membership service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), userAddCmd(), eventsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, newConfig())
		},
	}
}

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Log lifecycle events from Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Audit(ctx, newConfig())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version|redo|reset] [args...]",
		Short:     "Run database migrations",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"up", "up-by-one", "up-to", "down", "down-to", "redo", "reset", "status", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Migrate(cmd.Context(), newConfig(), args[0], args[1:]...)
		},
	}
}

func userAddCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "useradd <username>",
		Short: "Create an API user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			user, err := app.AddUser(cmd.Context(), newConfig(), args[0], password)
			if err != nil {
				return err
			}
			cmd.Printf("user %s created with id %d\n", user.Username, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password, prompted for when empty")
	return cmd
}

func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
