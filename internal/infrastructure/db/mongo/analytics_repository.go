package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/supplychain/backoffice/internal/core/ports"
)

// AnalyticsRepository runs the reporting aggregations inside MongoDB so the
// service never pages whole collections through application memory.
type AnalyticsRepository struct {
	db *mongo.Database
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) SalesTotals(ctx context.Context) (*ports.SalesAnalytics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"orders":   bson.M{"$sum": 1},
			"quantity": bson.M{"$sum": "$quantity"},
			"revenue":  bson.M{"$sum": "$total_amount"},
		}}},
	}

	cur, err := r.db.Collection(collectionSales).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Orders   int64   `bson:"orders"`
		Quantity int64   `bson:"quantity"`
		Revenue  float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("sales totals decode: %w", err)
	}

	out := &ports.SalesAnalytics{}
	if len(rows) > 0 {
		out.TotalOrders = rows[0].Orders
		out.TotalQuantitySold = rows[0].Quantity
		out.TotalRevenue = rows[0].Revenue
	}
	return out, nil
}

func (r *AnalyticsRepository) InventoryTotals(ctx context.Context) (*ports.InventoryAnalytics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	products, err := r.db.Collection(collectionProducts).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("product count: %w", err)
	}

	lowStock, err := r.db.Collection(collectionStocks).CountDocuments(ctx,
		bson.M{"$expr": bson.M{"$lt": bson.A{"$quantity", "$minimum_level"}}})
	if err != nil {
		return nil, fmt.Errorf("low stock count: %w", err)
	}

	// Join each stock record to its product and value the on-hand quantity
	// at the product's unit price, all server-side.
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": collectionProducts,
			"let":  bson.M{"pid": bson.M{"$toObjectId": "$product_id"}},
			"pipeline": mongo.Pipeline{
				{{Key: "$match", Value: bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$pid"}}}}},
			},
			"as": "product",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"quantity": bson.M{"$sum": "$quantity"},
			"value": bson.M{"$sum": bson.M{"$multiply": bson.A{
				"$quantity",
				bson.M{"$ifNull": bson.A{"$product.unit_price", 0}},
			}}},
		}}},
	}

	cur, err := r.db.Collection(collectionStocks).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Quantity int64   `bson:"quantity"`
		Value    float64 `bson:"value"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("inventory totals decode: %w", err)
	}

	out := &ports.InventoryAnalytics{
		TotalProducts: products,
		LowStockCount: lowStock,
	}
	if len(rows) > 0 {
		out.TotalStockQuantity = rows[0].Quantity
		out.TotalInventoryValue = rows[0].Value
	}
	return out, nil
}

func (r *AnalyticsRepository) ProductCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionProducts).CountDocuments(ctx, bson.M{})
}

func (r *AnalyticsRepository) SupplierCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionSuppliers).CountDocuments(ctx, bson.M{})
}

func (r *AnalyticsRepository) SaleCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionSales).CountDocuments(ctx, bson.M{})
}
