package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/domain"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context, limit, offset int) (*domain.UserPage, error)
}

type userRepository struct {
	conn *mongodb.Connector
	mem  *MemoryStore
}

func NewUserRepository(conn *mongodb.Connector, mem *MemoryStore) UserRepository {
	return &userRepository{
		conn: conn,
		mem:  mem,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(email)

	db := r.conn.Database(ctx)
	if db == nil {
		return r.mem.userByEmail(email), nil
	}

	var user domain.User
	err := db.Collection(mongodb.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(user.Email)

	db := r.conn.Database(ctx)
	if db == nil {
		r.mem.upsertUser(user)
		return nil
	}

	if _, err := db.Collection(mongodb.UsersCollection).InsertOne(ctx, user); err != nil {
		return errors.Wrap(err, "erro ao inserir usuário")
	}

	return nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(user.Email)

	db := r.conn.Database(ctx)
	if db == nil {
		r.mem.upsertUser(user)
		return nil
	}

	update := bson.M{
		"name":      user.Name,
		"role":      user.Role,
		"password":  user.PasswordHash,
		"company":   user.Company,
		"isActive":  user.IsActive,
		"updatedAt": user.UpdatedAt,
	}

	_, err := db.Collection(mongodb.UsersCollection).
		UpdateOne(ctx, bson.M{"email": user.Email}, bson.M{"$set": update})
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar usuário")
	}

	return nil
}

func (r *userRepository) ListUsers(ctx context.Context, limit, offset int) (*domain.UserPage, error) {
	if limit <= 0 {
		limit = 50
	}

	db := r.conn.Database(ctx)
	if db == nil {
		users, total := r.mem.listUsers(limit, offset)
		return &domain.UserPage{
			Users:  users,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		}, nil
	}

	coll := db.Collection(mongodb.UsersCollection)

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar usuários")
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar usuários")
	}

	return &domain.UserPage{
		Users:  users,
		Total:  int(total),
		Limit:  limit,
		Offset: offset,
	}, nil
}
