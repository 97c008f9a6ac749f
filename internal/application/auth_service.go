package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/helpers"
)

// dummyHash keeps the bcrypt comparison cost on the unknown-email path
// so login latency does not reveal whether the email exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("fridge-recipe-finder"), bcrypt.DefaultCost)

// AuthSession is the result of a successful registration or login.
type AuthSession struct {
	Token  string
	Expiry time.Time
	User   *entity.User
}

// AuthService owns registration and login: bcrypt credentials in the
// user store, signed session tokens out.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates an account and issues a session token. Duplicate
// emails (case-insensitive) fail with a conflict.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthSession, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, ErrInternal(err)
	}

	u := &entity.User{
		Email:        strings.ToLower(email),
		PasswordHash: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict("auth.email_taken")
		}
		s.Logger.WithError(err).WithField("op", "register").Error("create user failed")
		return nil, ErrInternal(err)
	}

	return s.issueSession(u)
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Burn a comparison so both failure paths cost the same.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrAuthentication("auth.wrong_credentials")
		}
		s.Logger.WithError(err).WithField("op", "login").Error("lookup user failed")
		return nil, ErrInternal(err)
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrAuthentication("auth.wrong_credentials")
	}

	return s.issueSession(u)
}

func (s *AuthService) issueSession(u *entity.User) (*AuthSession, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, ErrInternal(err)
	}
	return &AuthSession{Token: token, Expiry: exp, User: u}, nil
}
