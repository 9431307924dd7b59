package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
	"github.com/trendai/demand-insights-api/pkg/log"
)

// ListProducts retorna o catálogo paginado, opcionalmente filtrado por
// categoria ou estoque baixo
func ListProducts(repo repository.ProductRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseProductFilters(r)
		if err != nil {
			logger.WithError(err).Warn("products: invalid list parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		page, err := repo.ListProducts(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("products: failed to list products")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"source":   page.Source,
			"total":    page.Total,
			"category": filters.Category,
		}).Info("products: catalog listed")

		writeJSON(w, logger, page)
	})
}

// GetProduct retorna um produto pelo ID
func GetProduct(repo repository.ProductRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, source, err := repo.GetProductByID(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("products: failed to get product")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", map[string]any{
				"product_id": id,
			})
			return
		}

		writeJSON(w, logger, map[string]any{
			"source":  source,
			"product": product,
		})
	})
}

// CreateProduct insere um novo produto no catálogo
func CreateProduct(repo repository.ProductRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validateProduct(&product); err != nil {
			logger.WithError(err).Warn("products: invalid product payload")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		existing, _, err := repo.GetProductByID(r.Context(), product.ID)
		if err != nil {
			logger.WithError(err).Error("products: failed to check for existing product")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}
		if existing != nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceAlreadyExists, "Produto já cadastrado", map[string]any{
				"product_id": product.ID,
			})
			return
		}

		source, err := repo.CreateProduct(r.Context(), &product)
		if err != nil {
			logger.WithError(err).Error("products: failed to create product")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		logger.WithFields(log.Fields{
			"product_id": product.ID,
			"source":     source,
		}).Info("products: product created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"source":  source,
			"product": product,
		}); err != nil {
			logger.WithError(err).Error("products: failed to encode response")
		}
	})
}

// UpdateProduct aplica uma atualização parcial a um produto existente
func UpdateProduct(repo repository.ProductRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		product, source, err := repo.UpdateProduct(r.Context(), &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("products: failed to update product")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", map[string]any{
				"product_id": id,
			})
			return
		}

		logger.WithFields(log.Fields{
			"product_id": id,
			"source":     source,
		}).Info("products: product updated")

		writeJSON(w, logger, map[string]any{
			"source":  source,
			"product": product,
		})
	})
}

// DeleteProduct remove um produto do catálogo
func DeleteProduct(repo repository.ProductRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deleted, source, err := repo.DeleteProduct(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("products: failed to delete product")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", map[string]any{
				"product_id": id,
			})
			return
		}

		logger.WithFields(log.Fields{
			"product_id": id,
			"source":     source,
		}).Info("products: product deleted")

		writeJSON(w, logger, map[string]any{
			"source":  source,
			"deleted": true,
		})
	})
}

func parseProductFilters(r *http.Request) (domain.ProductFilters, error) {
	filters := domain.ProductFilters{
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filters, errInvalidQueryParam("limit", raw)
		}
		filters.Limit = limit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filters, errInvalidQueryParam("offset", raw)
		}
		filters.Offset = offset
	}

	if raw := r.URL.Query().Get("low_stock"); raw != "" {
		lowStock, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errInvalidQueryParam("low_stock", raw)
		}
		filters.LowStock = lowStock
	}

	return filters, nil
}

func validateProduct(product *domain.Product) error {
	switch {
	case product.ID == "" || product.Name == "" || product.Category == "":
		return errMissingField("id, name e category são obrigatórios")
	case product.Price < 0:
		return errMissingField("price não pode ser negativo")
	case product.CurrentStock < 0 || product.ReorderPoint < 0:
		return errMissingField("estoque e ponto de reposição não podem ser negativos")
	case product.TrendScore < 0 || product.TrendScore > 10:
		return errMissingField("trend_score deve estar entre 0 e 10")
	}

	if product.Seasonality == "" {
		product.Seasonality = domain.SeasonalityMedium
	}

	return nil
}
