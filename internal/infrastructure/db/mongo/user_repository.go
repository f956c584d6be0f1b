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

// UserRepository implements ports.UserRepository on the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) NewID(_ context.Context) (string, error) {
	return newObjectID(), nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	return findAll[domain.User](ctx, r.col, bson.M{"email": email})
}

func (r *UserRepository) FindByStatus(ctx context.Context, status domain.UserStatus) ([]*domain.User, error) {
	return findAll[domain.User](ctx, r.col, bson.M{"status": string(status)})
}

func (r *UserRepository) Put(ctx context.Context, user *domain.User) error {
	return replace(ctx, r.col, user.ID, user)
}

// Patch sets only the non-nil fields of patch.
func (r *UserRepository) Patch(ctx context.Context, id string, patch ports.UserPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Role != nil {
		set["role"] = string(*patch.Role)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.UpdatedAt != nil {
		set["updated_at"] = patch.UpdatedAt.UTC()
	}
	if patch.DeletedAt != nil {
		set["deleted_at"] = patch.DeletedAt.UTC()
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("patch user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ports.ErrRecordNotFound
	}
	return nil
}
