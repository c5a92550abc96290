package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supplychain/backoffice/internal/core/domain"
)

const collectionSuppliers = "suppliers"

type SupplierRepository struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{col: db.Collection(collectionSuppliers)}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSupplierExists
		}
		return nil, fmt.Errorf("insert supplier: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSupplierNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SupplierRepository) FindByCode(ctx context.Context, code string) (*domain.Supplier, error) {
	return r.findOne(ctx, bson.M{"supplier_code": code})
}

func (r *SupplierRepository) FindByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *SupplierRepository) findOne(ctx context.Context, filter bson.M) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Supplier
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepository) FindAll(ctx context.Context) ([]*domain.Supplier, error) {
	return r.find(ctx, bson.M{})
}

func (r *SupplierRepository) FindActive(ctx context.Context) ([]*domain.Supplier, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *SupplierRepository) find(ctx context.Context, filter bson.M) ([]*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Supplier
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	return out, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrSupplierNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"supplier_name":  s.SupplierName,
		"description":    s.Description,
		"contact_person": s.ContactPerson,
		"email":          s.Email,
		"phone":          s.Phone,
		"address":        s.Address,
		"is_active":      s.Active,
		"updated_at":     s.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSupplierNotFound
	}
	return s, nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSupplierNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "supplier_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
