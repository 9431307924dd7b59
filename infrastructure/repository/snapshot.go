package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/domain"
)

// SnapshotRepository persiste snapshots de métricas no banco de documentos.
// Snapshots só existem no modo live; no fallback SaveSnapshot retorna
// ErrStoreUnavailable e o agendador pula o ciclo.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, metrics *domain.Metrics) error
	LatestSnapshots(ctx context.Context, limit int) ([]*domain.Metrics, error)
}

type snapshotRepository struct {
	conn *mongodb.Connector
}

func NewSnapshotRepository(conn *mongodb.Connector) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, metrics *domain.Metrics) error {
	db := r.conn.Database(ctx)
	if db == nil {
		return ErrStoreUnavailable
	}

	if _, err := db.Collection(mongodb.SnapshotsCollection).InsertOne(ctx, metrics); err != nil {
		return errors.Wrap(err, "erro ao salvar snapshot de métricas")
	}

	return nil
}

func (r *snapshotRepository) LatestSnapshots(ctx context.Context, limit int) ([]*domain.Metrics, error) {
	db := r.conn.Database(ctx)
	if db == nil {
		return nil, ErrStoreUnavailable
	}

	if limit <= 0 {
		limit = 24
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := db.Collection(mongodb.SnapshotsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshots")
	}
	defer cursor.Close(ctx)

	var snapshots []*domain.Metrics
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar snapshots")
	}

	return snapshots, nil
}
