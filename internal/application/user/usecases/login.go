package usecases

import (
	"context"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token        string
	ExpiresAt    string
	UserID       uint
	Username     string
	Name         string
	Role         string
	Capabilities []string
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown username", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username, "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	caps := make([]string, 0)
	for _, c := range u.Capabilities().List() {
		caps = append(caps, string(c))
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username(), "role", u.Role())

	return &LoginResult{
		Token:        token,
		ExpiresAt:    expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		UserID:       u.ID(),
		Username:     u.Username(),
		Name:         u.Name(),
		Role:         string(u.Role()),
		Capabilities: caps,
	}, nil
}
