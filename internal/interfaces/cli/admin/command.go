package admin

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/infrastructure/auth"
	"fixtrack/internal/infrastructure/config"
	"fixtrack/internal/infrastructure/database"
	"fixtrack/internal/infrastructure/repository"
	"fixtrack/internal/shared/logger"
)

var (
	env      string
	username string
	name     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Long:  `Create an admin account. Use this to bootstrap the first login on a fresh installation.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login username (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (defaults to username)")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := name
	if displayName == "" {
		displayName = username
	}

	account, err := user.NewUser(username, displayName, hash, user.RoleAdmin, user.NewCapabilities(), nil)
	if err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get())

	if existing, err := userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return fmt.Errorf("username %q is already taken", username)
	}

	if err := userRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	fmt.Printf("Admin account %q created\n", username)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	password := strings.TrimSpace(string(first))
	if password != strings.TrimSpace(string(second)) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return password, nil
}
