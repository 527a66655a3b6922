package mongodb

import (
	"context"
	"errors"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// InfoRepository define los métodos para interactuar con la información del teatro
type InfoRepository interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, info *content.Info) error
	Latest(ctx context.Context) (*content.Info, error)
}

// OwnerRepository define los métodos para interactuar con los propietarios
type OwnerRepository interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, owner *content.Owner) error
	All(ctx context.Context) ([]*content.Owner, error)
}

// EventRepository define los métodos para interactuar con las funciones programadas.
// AllByDate owns the ascending-by-date ordering invariant of the event listing.
type EventRepository interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, event *content.Event) error
	AllByDate(ctx context.Context) ([]*content.Event, error)
}
