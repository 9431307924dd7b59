package mongodb

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trendai/demand-insights-api/internal/config"
)

// Nomes das collections do banco de documentos
const (
	ProductsCollection  = "products"
	SalesCollection     = "sales"
	UsersCollection     = "users"
	SnapshotsCollection = "metrics"
)

// Connector media o acesso ao MongoDB com conexão preguiçosa e cacheada.
// Chamadas concorrentes antes da primeira conexão compartilham uma única
// tentativa; uma tentativa falha fixa o modo fallback até o restart do
// processo (não há retry nem backoff).
type Connector struct {
	cfg config.Database

	once   sync.Once
	client *mongo.Client
	db     *mongo.Database
}

// NewConnector cria um conector sem abrir conexão. A conexão é aberta sob
// demanda na primeira chamada a Database.
func NewConnector(cfg config.Database) *Connector {
	return &Connector{cfg: cfg}
}

// Database retorna o banco de documentos, ou nil quando o armazenamento não
// está disponível (sinal para os chamadores usarem o dataset de fallback).
// Nunca retorna erro: indisponibilidade é degradação, não falha.
func (c *Connector) Database(ctx context.Context) *mongo.Database {
	c.once.Do(func() {
		if c.cfg.ForceFallback {
			logrus.Info("FORCE_FALLBACK habilitado, usando dataset gerado")
			return
		}

		if c.cfg.URI == "" {
			logrus.Warn("MONGODB_URI não configurada, usando dataset gerado")
			return
		}

		db, client, err := connect(ctx, c.cfg)
		if err != nil {
			logrus.WithError(err).Warn("Falha ao conectar ao MongoDB, usando dataset gerado")
			return
		}

		logrus.WithField("database", c.cfg.Name).Info("Conexão com MongoDB estabelecida com sucesso")
		c.client = client
		c.db = db
	})

	return c.db
}

// Connected informa se há uma conexão ativa com o armazenamento
func (c *Connector) Connected(ctx context.Context) bool {
	return c.Database(ctx) != nil
}

// Close encerra a conexão, quando existente
func (c *Connector) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func connect(ctx context.Context, cfg config.Database) (*mongo.Database, *mongo.Client, error) {
	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao abrir cliente mongo")
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "erro ao testar conexão com mongo")
	}

	return client.Database(cfg.Name), client, nil
}
