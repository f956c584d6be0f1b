package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

// UserRolesRepository implements ports.UserRolesRepository. Documents are
// keyed by user id.
type UserRolesRepository struct {
	col *mongo.Collection
}

func NewUserRolesRepository(db *mongo.Database) *UserRolesRepository {
	return &UserRolesRepository{col: db.Collection(collectionUserRoles)}
}

var _ ports.UserRolesRepository = (*UserRolesRepository)(nil)

func (r *UserRolesRepository) Get(ctx context.Context, userID string) (*domain.UserRoles, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.UserRoles
	if err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	return &rec, nil
}

func (r *UserRolesRepository) List(ctx context.Context) ([]*domain.UserRoles, error) {
	return findAll[domain.UserRoles](ctx, r.col, bson.M{})
}

func (r *UserRolesRepository) Put(ctx context.Context, record *domain.UserRoles) error {
	return replace(ctx, r.col, record.UserID, record)
}
