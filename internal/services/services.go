package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-weeklist/internal/models"
	"github.com/adanyl0v/go-weeklist/internal/weeklist"
)

var (
	ErrUserNotFound         = errors.New("user with this email is not found")
	ErrUserAlreadyExists    = errors.New("email already exists")
	ErrUserPasswordMismatch = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")

	ErrWeeklistNotFound    = errors.New("weeklist not found")
	ErrNoActiveWeeklists   = errors.New("no active weeklists found")
	ErrActiveWeeklistLimit = errors.New("you already have two active week lists")
)

// Clock supplies the current instant. Every request reads it once and
// passes the value down explicitly, so the lifecycle rules and the
// week-end calculator stay deterministic in tests.
type Clock func() time.Time

// Principal is the authenticated caller, decoded from the bearer
// credential by the auth middleware and passed into every service
// call to scope access to the caller's own aggregates.
type Principal struct {
	ID    string
	Email string
}

type AuthService interface {
	// Signup creates a user with a hashed password and a generated id.
	//
	// It returns ErrUserAlreadyExists if the email is already taken.
	Signup(ctx context.Context, params SignupParams) (*models.User, error)

	// Login authenticates the user by email and password and issues
	// a signed bearer token carrying the user's id and email.
	//
	// It returns ErrUserNotFound if no user has the given email or
	// ErrUserPasswordMismatch if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// VerifyToken parses and validates a bearer credential and
	// returns the principal it was issued to, or ErrInvalidToken.
	VerifyToken(token string) (*Principal, error)
}

type SignupParams struct {
	Fullname string
	Email    string
	Password string
	Age      int
	Gender   string
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type WeeklistService interface {
	// Create starts a new active weeklist whose window runs until the
	// end of the current week.
	//
	// It returns ErrActiveWeeklistLimit when the owner already has
	// two active weeklists.
	Create(ctx context.Context, owner Principal, name string) (*models.Weeklist, error)

	// GetByID loads one weeklist. A stale active weeklist is flipped
	// to inactive and the flip is persisted best-effort before the
	// weeklist is returned.
	GetByID(ctx context.Context, owner Principal, id string) (*models.Weeklist, error)

	// Update patches the weeklist's own fields within the 24-hour
	// creation window and restarts its active window.
	Update(ctx context.Context, owner Principal, id string, patch WeeklistPatch) (*models.Weeklist, error)

	// Delete removes the whole aggregate within the 24-hour creation window.
	Delete(ctx context.Context, owner Principal, id string) error

	// ClearTasks empties the task collection within the 24-hour
	// creation window and restarts the active window.
	ClearTasks(ctx context.Context, owner Principal, id string) (*models.Weeklist, error)

	AddTask(ctx context.Context, owner Principal, id, text string) (*models.Weeklist, error)
	MarkTask(ctx context.Context, owner Principal, id, taskID string, isCompleted bool) (*models.Weeklist, error)
	EditTask(ctx context.Context, owner Principal, id, taskID, text string) (*models.Weeklist, error)
	DeleteTask(ctx context.Context, owner Principal, id, taskID string) (*models.Weeklist, error)

	// ListActive returns the owner's active weeklists with the time
	// left in each one's window. Stale entries are flipped to
	// inactive, persisted and dropped from the result; an empty
	// result is ErrNoActiveWeeklists.
	ListActive(ctx context.Context, owner Principal) ([]ActiveWeeklist, error)
}

type WeeklistPatch struct {
	Name *string
}

type ActiveWeeklist struct {
	Weeklist *models.Weeklist
	TimeLeft weeklist.TimeLeft
}
