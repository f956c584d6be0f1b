package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

// RoleRepository implements ports.RoleRepository on the roles collection.
type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func (r *RoleRepository) NewID(_ context.Context) (string, error) {
	return newObjectID(), nil
}

func (r *RoleRepository) Get(ctx context.Context, id string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var role domain.Role
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) ([]*domain.Role, error) {
	return findAll[domain.Role](ctx, r.col, bson.M{"name": name})
}

func (r *RoleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	return findAll[domain.Role](ctx, r.col, bson.M{})
}

func (r *RoleRepository) Put(ctx context.Context, role *domain.Role) error {
	return replace(ctx, r.col, role.ID, role)
}

func (r *RoleRepository) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// findAll runs filter against col and decodes every match in key order.
func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter, byID)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]*T, 0)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", col.Name(), err)
	}
	return out, nil
}

// replace writes doc under id, inserting when the key is new.
func replace(ctx context.Context, col *mongo.Collection, id string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace %s: %w", col.Name(), err)
	}
	return nil
}
