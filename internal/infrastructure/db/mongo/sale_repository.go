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

const collectionSales = "sales"

type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSaleExists
		}
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SaleRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error) {
	return r.findOne(ctx, bson.M{"sale_order_number": orderNumber})
}

func (r *SaleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sale
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return &s, nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]*domain.Sale, error) {
	return r.find(ctx, bson.M{})
}

func (r *SaleRepository) FindByStatus(ctx context.Context, status string) ([]*domain.Sale, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *SaleRepository) FindByProductID(ctx context.Context, productID string) ([]*domain.Sale, error) {
	return r.find(ctx, bson.M{"product_id": productID})
}

func (r *SaleRepository) find(ctx context.Context, filter bson.M) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Sale
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return out, nil
}

func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"product_id":       s.ProductID,
		"quantity":         s.Quantity,
		"unit_price":       s.UnitPrice,
		"total_amount":     s.TotalAmount,
		"status":           s.Status,
		"customer_name":    s.CustomerName,
		"delivery_address": s.DeliveryAddress,
		"updated_at":       s.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSaleNotFound
	}
	return s, nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSaleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sale_order_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
