package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, filters domain.ProductFilters) (*domain.ProductPage, error)
	AllProducts(ctx context.Context) ([]*domain.Product, domain.DataSource, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, domain.DataSource, error)
	LowStockProducts(ctx context.Context) ([]*domain.Product, domain.DataSource, error)
	CreateProduct(ctx context.Context, product *domain.Product) (domain.DataSource, error)
	UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) (*domain.Product, domain.DataSource, error)
	DeleteProduct(ctx context.Context, id string) (bool, domain.DataSource, error)
}

type productRepository struct {
	conn *mongodb.Connector
	mem  *MemoryStore
}

func NewProductRepository(conn *mongodb.Connector, mem *MemoryStore) ProductRepository {
	return &productRepository{
		conn: conn,
		mem:  mem,
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filters domain.ProductFilters) (*domain.ProductPage, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultProductLimit
	}

	db := r.conn.Database(ctx)
	if db == nil {
		products, total := r.mem.listProducts(filters)
		return &domain.ProductPage{
			Source:   domain.SourceFallback,
			Products: products,
			Total:    total,
			Limit:    filters.Limit,
			Offset:   filters.Offset,
		}, nil
	}

	query := bson.M{}
	if filters.Category != "" {
		query["category"] = filters.Category
	}
	if filters.LowStock {
		query["$expr"] = bson.M{"$lte": bson.A{"$currentStock", "$reorderPoint"}}
	}

	coll := db.Collection(mongodb.ProductsCollection)

	opts := options.Find().
		SetSkip(int64(filters.Offset)).
		SetLimit(int64(filters.Limit)).
		SetSort(bson.D{{Key: "trendScore", Value: -1}})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar produtos")
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar produtos")
	}

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar produtos")
	}

	return &domain.ProductPage{
		Source:   domain.SourceLive,
		Products: products,
		Total:    int(total),
		Limit:    filters.Limit,
		Offset:   filters.Offset,
	}, nil
}

func (r *productRepository) AllProducts(ctx context.Context) ([]*domain.Product, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.allProducts(), domain.SourceFallback, nil
	}

	cursor, err := db.Collection(mongodb.ProductsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao buscar produtos")
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao decodificar produtos")
	}

	return products, domain.SourceLive, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.productByID(id), domain.SourceFallback, nil
	}

	var product domain.Product
	err := db.Collection(mongodb.ProductsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.SourceLive, nil
		}
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao buscar produto")
	}

	return &product, domain.SourceLive, nil
}

func (r *productRepository) LowStockProducts(ctx context.Context) ([]*domain.Product, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.lowStockProducts(), domain.SourceFallback, nil
	}

	query := bson.M{"$expr": bson.M{"$lte": bson.A{"$currentStock", "$reorderPoint"}}}

	cursor, err := db.Collection(mongodb.ProductsCollection).Find(ctx, query)
	if err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao buscar produtos com estoque baixo")
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao decodificar produtos")
	}

	return products, domain.SourceLive, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) (domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		r.mem.insertProduct(product)
		return domain.SourceFallback, nil
	}

	if _, err := db.Collection(mongodb.ProductsCollection).InsertOne(ctx, product); err != nil {
		return domain.SourceLive, errors.Wrap(err, "erro ao inserir produto")
	}

	return domain.SourceLive, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) (*domain.Product, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.updateProduct(req), domain.SourceFallback, nil
	}

	update := productUpdateFields(req)
	if len(update) == 0 {
		product, source, err := r.GetProductByID(ctx, req.ID)
		return product, source, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product domain.Product
	err := db.Collection(mongodb.ProductsCollection).
		FindOneAndUpdate(ctx, bson.M{"id": req.ID}, bson.M{"$set": update}, opts).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.SourceLive, nil
		}
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao atualizar produto")
	}

	return &product, domain.SourceLive, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) (bool, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.deleteProduct(id), domain.SourceFallback, nil
	}

	result, err := db.Collection(mongodb.ProductsCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, domain.SourceLive, errors.Wrap(err, "erro ao remover produto")
	}

	return result.DeletedCount > 0, domain.SourceLive, nil
}

func productUpdateFields(req *domain.UpdateProductRequest) bson.M {
	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.CurrentStock != nil {
		update["currentStock"] = *req.CurrentStock
	}
	if req.ReorderPoint != nil {
		update["reorderPoint"] = *req.ReorderPoint
	}
	if req.Supplier != nil {
		update["supplier"] = *req.Supplier
	}
	if req.Seasonality != nil {
		update["seasonality"] = *req.Seasonality
	}
	if req.TrendScore != nil {
		update["trendScore"] = *req.TrendScore
	}
	return update
}
