package users

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"pet-adoption-portal/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrNotFound       = errors.New("user not found")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 8

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Session es lo que devuelven register/login.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

func (s *Service) Register(ctx context.Context, email, password, name string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) || len(password) < minPasswordLen {
		return Session{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}

	u := User{
		ID:           s.newID(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		Role:         auth.RoleUser,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return Session{}, err
	}
	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Mismo error que password incorrecto: no revelar si el email existe.
		return Session{}, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrBadCredentials
	}
	return s.session(u)
}

func (s *Service) GetProfile(ctx context.Context, id string) (Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile(), nil
}

func (s *Service) session(u User) (Session, error) {
	if s.issuer == nil {
		return Session{}, errors.New("token issuer not configured")
	}
	token, err := s.issuer.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: u.Profile()}, nil
}
