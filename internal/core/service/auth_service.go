package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/micropost/micropost/internal/api/metrics"
	"github.com/micropost/micropost/internal/core/domain"
	"github.com/micropost/micropost/internal/core/ports"
)

// AuthService implements the implicit signup-or-login flow.
type AuthService struct {
	users     ports.UserRepository
	counter   ports.Counter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, counter ports.Counter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, counter: counter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// LoginOrRegister branches on an explicit existence check: an unknown
// username registers a new account, a known one authenticates against the
// stored bcrypt hash.
//
// Two concurrent first-time logins for the same username may both register;
// each allocates its own user ID and the later username index write wins.
// No lock is added around the check-then-create pair.
func (s *AuthService) LoginOrRegister(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	id, exists, err := s.users.LookupID(ctx, username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return s.register(ctx, username, password)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.CredentialHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("authenticated").Inc()
	return &ports.AuthResult{Token: token, UserID: user.ID, Username: user.Username}, nil
}

func (s *AuthService) register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	id, err := s.counter.Next(ctx, ports.CounterUserID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             id,
		Username:       username,
		CredentialHash: string(hash),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(id, username)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint64("user_id", id).Str("username", username).Msg("user registered")
	metrics.LoginsTotal.WithLabelValues("created").Inc()

	return &ports.AuthResult{Token: token, UserID: id, Username: username, Created: true}, nil
}

func (s *AuthService) generateToken(userID uint64, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
