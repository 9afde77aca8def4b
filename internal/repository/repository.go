package repository

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Weeklists is the persistence collaborator for the weeklist
// aggregate. A weeklist and its embedded tasks are stored and
// replaced as one unit, and every operation is scoped by the owning
// user id so one tenant can never touch another tenant's lists.
type Weeklists interface {
	Insert(ctx context.Context, wl *models.Weeklist) error
	FindByID(ctx context.Context, id, userID string) (*models.Weeklist, error)
	FindActiveByUserID(ctx context.Context, userID string) ([]*models.Weeklist, error)
	CountActiveByUserID(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, wl *models.Weeklist) error
	Delete(ctx context.Context, id, userID string) error
}

type Users interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
