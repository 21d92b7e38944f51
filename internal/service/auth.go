// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/vasei-me/Architecture-Blog-API/internal/apierr"
	"github.com/vasei-me/Architecture-Blog-API/internal/models"
	"github.com/vasei-me/Architecture-Blog-API/internal/store"
	"github.com/vasei-me/Architecture-Blog-API/internal/token"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// AuthService handles registration and login.
type AuthService struct {
	users  UserStore
	tokens *token.Manager
}

func NewAuthService(users UserStore, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Registration is the request body for account creation.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the request body for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult carries the authenticated user and a freshly minted token.
type AuthResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Register validates the input, refuses duplicate identities and creates the
// account. The password is hashed by the user store before it touches the
// database.
func (s *AuthService) Register(in Registration) (*AuthResult, error) {
	if msg := validateRegistration(in); msg != "" {
		return nil, apierr.Validation(msg)
	}

	exists, err := s.users.ExistsByEmailOrUsername(in.Email, in.Username)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if exists {
		return nil, apierr.Conflict("User with this email or username already exists")
	}

	user, err := s.users.Create(in.Username, in.Email, in.Password)
	if err != nil {
		// Concurrent registration can still trip the unique index.
		if store.IsUniqueViolation(err) {
			return nil, apierr.Conflict("User with this email or username already exists")
		}
		return nil, apierr.Internal(err)
	}

	tok, err := s.tokens.Mint(user)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &AuthResult{ID: user.ID.String(), Username: user.Username, Email: user.Email, Token: tok}, nil
}

// Login verifies the credentials. Absent accounts and wrong passwords produce
// the same error so the response never reveals which one failed.
func (s *AuthService) Login(in Credentials) (*AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apierr.Validation("Email and password are required")
	}

	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if user == nil || !s.users.CheckPassword(user, in.Password) {
		return nil, apierr.Unauthorized("Invalid email or password")
	}

	tok, err := s.tokens.Mint(user)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &AuthResult{ID: user.ID.String(), Username: user.Username, Email: user.Email, Token: tok}, nil
}

// Profile returns the account behind a verified token.
func (s *AuthService) Profile(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if user == nil {
		return nil, apierr.NotFound("User not found")
	}
	return user, nil
}

func validateRegistration(in Registration) string {
	switch {
	case in.Username == "":
		return "Username is required"
	case len(in.Username) < 3 || len(in.Username) > 30:
		return "Username must be between 3 and 30 characters"
	case !usernameRe.MatchString(in.Username):
		return "Username must only contain alphanumeric characters"
	case in.Email == "":
		return "Email is required"
	case !emailRe.MatchString(in.Email):
		return "Please provide a valid email address"
	case in.Password == "":
		return "Password is required"
	case len(in.Password) < 6:
		return "Password must be at least 6 characters long"
	}
	return ""
}
