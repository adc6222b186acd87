package kuadro

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	// bcrypt silently truncates inputs beyond 72 bytes, so reject them instead.
	maxPasswordLen = 72
)

var (
	// ErrUserNotFound denotes a not found user.
	ErrUserNotFound = NotFoundError("user not found")
	// ErrEmailTaken denotes an already registered email.
	ErrEmailTaken = AlreadyExistsError("email taken")
	// ErrUsernameTaken denotes an already registered username.
	ErrUsernameTaken = AlreadyExistsError("username taken")
	// ErrInvalidCredentials denotes a login with an unknown email or a wrong password.
	ErrInvalidCredentials = UnauthenticatedError("invalid credentials")
)

// User model. The password hash never leaves this package.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupInput request.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *SignupInput) validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	fields := map[string]string{}
	if !reUsername.MatchString(in.Username) {
		fields["username"] = "must be 3 to 30 letters, numbers or underscores"
	}
	if !reEmail.MatchString(in.Email) {
		fields["email"] = "must be a valid email"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("must be at least %d characters long", minPasswordLen)
	} else if len(in.Password) > maxPasswordLen {
		fields["password"] = fmt.Sprintf("must be at most %d bytes long", maxPasswordLen)
	}

	if len(fields) != 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (in *LoginInput) validate() error {
	in.Email = normalizeEmail(in.Email)

	fields := map[string]string{}
	if !reEmail.MatchString(in.Email) {
		fields["email"] = "must be a valid email"
	}
	if in.Password == "" {
		fields["password"] = "required"
	}

	if len(fields) != 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Signup registers a new user and issues an auth token for it.
// Email and username uniqueness rely on the store constraints,
// so concurrent signups cannot slip past a pre-check.
func (s *Service) Signup(ctx context.Context, in SignupInput) (AuthOutput, error) {
	var out AuthOutput

	if err := in.validate(); err != nil {
		return out, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost())
	if err != nil {
		return out, fmt.Errorf("could not hash password: %w", err)
	}

	usr := User{
		Username: in.Username,
		Email:    in.Email,
	}
	query := `
		INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	row := s.DB.QueryRowContext(ctx, query, in.Email, in.Username, string(hash))
	err = row.Scan(&usr.ID, &usr.CreatedAt)
	if isUniqueViolation(err) {
		if strings.Contains(err.Error(), "email") {
			return out, ErrEmailTaken
		}
		return out, ErrUsernameTaken
	}

	if err != nil {
		return out, fmt.Errorf("could not sql insert user: %w", err)
	}

	return s.issueAuth(usr)
}

// Login with email and password. Unknown emails and wrong passwords
// both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	var out AuthOutput

	if err := in.validate(); err != nil {
		return out, err
	}

	var usr User
	var hash string
	query := "SELECT id, username, created_at, password_hash FROM users WHERE email = $1"
	row := s.DB.QueryRowContext(ctx, query, in.Email)
	err := row.Scan(&usr.ID, &usr.Username, &usr.CreatedAt, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return out, ErrInvalidCredentials
	}

	if err != nil {
		return out, fmt.Errorf("could not sql select user by email: %w", err)
	}

	usr.Email = in.Email

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) != nil {
		return out, ErrInvalidCredentials
	}

	return s.issueAuth(usr)
}

// AuthUser resolves the authenticated user in context to its current record.
// A valid token whose user is gone resolves to ErrUnauthenticated,
// which is how deleted accounts revoke their outstanding tokens.
func (s *Service) AuthUser(ctx context.Context) (User, error) {
	uid, ok := ctx.Value(KeyAuthUserID).(string)
	if !ok {
		return User{}, ErrUnauthenticated
	}

	usr, err := s.userByID(ctx, uid)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrUnauthenticated
	}

	return usr, err
}

func (s *Service) userByID(ctx context.Context, userID string) (User, error) {
	var usr User
	query := "SELECT username, email, created_at FROM users WHERE id = $1"
	row := s.DB.QueryRowContext(ctx, query, userID)
	err := row.Scan(&usr.Username, &usr.Email, &usr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return usr, ErrUserNotFound
	}

	if err != nil {
		return usr, fmt.Errorf("could not sql select user: %w", err)
	}

	usr.ID = userID
	return usr, nil
}

func (s *Service) bcryptCost() int {
	if s.BcryptCost != 0 {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}
