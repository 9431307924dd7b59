package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/domain"
)

type SaleRepository interface {
	ListSales(ctx context.Context, filters domain.SaleFilters) (*domain.SalePage, error)
	SalesSince(ctx context.Context, since time.Time) ([]*domain.Sale, domain.DataSource, error)
	CreateSale(ctx context.Context, sale *domain.Sale) (domain.DataSource, error)
}

type saleRepository struct {
	conn *mongodb.Connector
	mem  *MemoryStore
}

func NewSaleRepository(conn *mongodb.Connector, mem *MemoryStore) SaleRepository {
	return &saleRepository{
		conn: conn,
		mem:  mem,
	}
}

func (r *saleRepository) ListSales(ctx context.Context, filters domain.SaleFilters) (*domain.SalePage, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultSaleLimit
	}

	db := r.conn.Database(ctx)
	if db == nil {
		sales, total := r.mem.listSales(filters)
		return &domain.SalePage{
			Source: domain.SourceFallback,
			Sales:  sales,
			Total:  total,
			Limit:  filters.Limit,
		}, nil
	}

	query := bson.M{}
	if filters.ProductID != "" {
		query["productId"] = filters.ProductID
	}
	if filters.Region != "" {
		query["region"] = filters.Region
	}
	if filters.Channel != "" {
		query["channel"] = filters.Channel
	}
	if filters.StartDate != nil || filters.EndDate != nil {
		dateQuery := bson.M{}
		if filters.StartDate != nil {
			dateQuery["$gte"] = *filters.StartDate
		}
		if filters.EndDate != nil {
			dateQuery["$lte"] = *filters.EndDate
		}
		query["date"] = dateQuery
	}

	coll := db.Collection(mongodb.SalesCollection)

	opts := options.Find().
		SetSkip(int64(filters.Offset)).
		SetLimit(int64(filters.Limit)).
		SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas")
	}
	defer cursor.Close(ctx)

	var sales []*domain.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar vendas")
	}

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar vendas")
	}

	return &domain.SalePage{
		Source: domain.SourceLive,
		Sales:  sales,
		Total:  int(total),
		Limit:  filters.Limit,
	}, nil
}

func (r *saleRepository) SalesSince(ctx context.Context, since time.Time) ([]*domain.Sale, domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.salesSince(since), domain.SourceFallback, nil
	}

	query := bson.M{"date": bson.M{"$gte": since}}

	cursor, err := db.Collection(mongodb.SalesCollection).Find(ctx, query)
	if err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao buscar vendas do período")
	}
	defer cursor.Close(ctx)

	var sales []*domain.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, domain.SourceLive, errors.Wrap(err, "erro ao decodificar vendas")
	}

	return sales, domain.SourceLive, nil
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *domain.Sale) (domain.DataSource, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		r.mem.insertSale(sale)
		return domain.SourceFallback, nil
	}

	if _, err := db.Collection(mongodb.SalesCollection).InsertOne(ctx, sale); err != nil {
		return domain.SourceLive, errors.Wrap(err, "erro ao inserir venda")
	}

	return domain.SourceLive, nil
}
