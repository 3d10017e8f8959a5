package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/models"
	"inkwell/repositories"
)

// minPasswordLength mirrors the policy of the hosted auth provider the
// original deployment used.
const minPasswordLength = 6

const tokenLifetime = 30 * 24 * time.Hour

// IdentityService owns credentials, sessions and the identity change
// stream. Per-request identity travels through the call context via the
// auth middleware; the stream exists for subscribers that want to observe
// sign-in state over time.
type IdentityService struct {
	users    *repositories.UserRepository
	uploader Uploader
	secret   []byte
	stream   *identityStream
}

func NewIdentityService(users *repositories.UserRepository, uploader Uploader, secret string) *IdentityService {
	return &IdentityService{
		users:    users,
		uploader: uploader,
		secret:   []byte(secret),
		stream:   newIdentityStream(),
	}
}

// Register creates a credential and its public profile as one document, so
// a credential can never exist without a profile. The optional avatar is
// uploaded before anything is written; an upload failure aborts the whole
// registration.
func (s *IdentityService) Register(ctx context.Context, email, password, name, imageName string, image io.Reader) (*models.User, string, error) {
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", models.ErrCredentialConflict
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}

	var photoURL string
	if image != nil {
		var err error
		photoURL, err = s.uploader.Upload(ctx, imageName, image)
		if err != nil {
			return nil, "", err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		PhotoURL:  photoURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.stream.Set(user)
	return user, token, nil
}

// Login verifies the credential and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.stream.Set(user)
	return user, token, nil
}

// Logout always succeeds locally.
func (s *IdentityService) Logout() {
	s.stream.Set(nil)
}

// UpdateProfile mutates the caller's display name and photo. Posts and
// comments keep their author snapshots; no fan-out happens here.
func (s *IdentityService) UpdateProfile(ctx context.Context, user *models.User, name, photoURL string) error {
	if user == nil {
		return models.ErrNotAuthenticated
	}

	if err := s.users.UpdateProfile(ctx, user.ID, name, photoURL); err != nil {
		return err
	}

	updated := *user
	updated.Name = name
	updated.PhotoURL = photoURL
	s.stream.Set(&updated)
	return nil
}

// Authenticate resolves a session token to its user. Any parse or lookup
// failure is reported as a plain authentication failure.
func (s *IdentityService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrNotAuthenticated
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, models.ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	return user, nil
}

// Subscribe returns the identity change stream: the current identity first
// (possibly nil), then one event per register, login, logout or profile
// update.
func (s *IdentityService) Subscribe() <-chan *models.User {
	return s.stream.Subscribe()
}

func (s *IdentityService) Unsubscribe(ch <-chan *models.User) {
	s.stream.Unsubscribe(ch)
}

func (s *IdentityService) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	})
	return token.SignedString(s.secret)
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return models.ErrWeakCredential
	}
	return nil
}
