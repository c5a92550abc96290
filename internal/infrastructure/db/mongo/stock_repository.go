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

const collectionStocks = "stocks"

type StockRepository struct {
	col *mongo.Collection
}

func NewStockRepository(db *mongo.Database) *StockRepository {
	return &StockRepository{col: db.Collection(collectionStocks)}
}

func (r *StockRepository) Create(ctx context.Context, s *domain.Stock) (*domain.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStockExists
		}
		return nil, fmt.Errorf("insert stock: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (*domain.Stock, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStockNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *StockRepository) FindByProductID(ctx context.Context, productID string) (*domain.Stock, error) {
	return r.findOne(ctx, bson.M{"product_id": productID})
}

func (r *StockRepository) findOne(ctx context.Context, filter bson.M) (*domain.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Stock
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("find stock: %w", err)
	}
	return &s, nil
}

func (r *StockRepository) FindAll(ctx context.Context) ([]*domain.Stock, error) {
	return r.find(ctx, bson.M{})
}

// FindLow compares each record's quantity against its own minimum level in
// the database rather than applying a global threshold.
func (r *StockRepository) FindLow(ctx context.Context) ([]*domain.Stock, error) {
	return r.find(ctx, bson.M{"$expr": bson.M{"$lt": bson.A{"$quantity", "$minimum_level"}}})
}

func (r *StockRepository) find(ctx context.Context, filter bson.M) ([]*domain.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Stock
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode stocks: %w", err)
	}
	return out, nil
}

func (r *StockRepository) Update(ctx context.Context, s *domain.Stock) (*domain.Stock, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrStockNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"product_id":         s.ProductID,
		"quantity":           s.Quantity,
		"minimum_level":      s.MinimumLevel,
		"maximum_level":      s.MaximumLevel,
		"warehouse_location": s.WarehouseLocation,
		"updated_at":         s.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStockNotFound
	}
	return s, nil
}

func (r *StockRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStockNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// EnsureIndexes creates the unique product_id index; one stock record exists
// per product.
func (r *StockRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
