package repository

import "github.com/pkg/errors"

// ErrStoreUnavailable sinaliza que o banco de documentos não está acessível.
// Retornado apenas por operações que exigem o armazenamento real (snapshots);
// leituras e escritas de catálogo degradam para o dataset em memória.
var ErrStoreUnavailable = errors.New("banco de documentos indisponível")

// Limites padrão de paginação
const (
	DefaultProductLimit = 100
	DefaultSaleLimit    = 1000
)
