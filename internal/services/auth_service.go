package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-weeklist/internal/models"
	"github.com/adanyl0v/go-weeklist/internal/repository"
)

const emailClaim = "email"

type authServiceImpl struct {
	logger        zerolog.Logger
	users         repository.Users
	jwtIssuer     string
	jwtSigningKey []byte
	jwtTokenTTL   time.Duration
	now           Clock
}

func NewAuthService(
	logger zerolog.Logger,
	users repository.Users,
	jwtIssuer string,
	jwtSigningKey []byte,
	jwtTokenTTL time.Duration,
	now Clock,
) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authServiceImpl{
		logger:        logger,
		users:         users,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		jwtTokenTTL:   jwtTokenTTL,
		now:           now,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, params SignupParams) (*models.User, error) {
	hash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate user id")
		return nil, err
	}

	now := s.now()
	user := &models.User{
		ID:        id.String(),
		Fullname:  strings.ToLower(strings.TrimSpace(params.Fullname)),
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		Password:  hash,
		Age:       params.Age,
		Gender:    params.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			s.logger.Warn().
				Str("email", user.Email).
				Msg("email already exists")
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("signed up")
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn().
				Str("email", email).
				Msg("user not found")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(params.Password, user.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Warn().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrUserPasswordMismatch
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("logged in")
	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) VerifyToken(token string) (*Principal, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims[emailClaim].(string)
	return &Principal{
		ID:    subject,
		Email: email,
	}, nil
}

func (s *authServiceImpl) generateToken(user *models.User) (string, time.Time, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.jwtTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":      tokenID.String(),
		"iss":      s.jwtIssuer,
		"sub":      user.ID,
		emailClaim: user.Email,
		"exp":      jwt.NewNumericDate(expiresAt),
		"nbf":      jwt.NewNumericDate(now),
		"iat":      jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
