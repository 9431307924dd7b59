package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
	"github.com/trendai/demand-insights-api/pkg/log"
	"github.com/trendai/demand-insights-api/pkg/utils"
)

// ListSales retorna o histórico de vendas, mais recente primeiro
func ListSales(repo repository.SaleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseSaleFilters(r)
		if err != nil {
			logger.WithError(err).Warn("sales: invalid list parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		page, err := repo.ListSales(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("sales: failed to list sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"source": page.Source,
			"total":  page.Total,
		}).Info("sales: history listed")

		writeJSON(w, logger, page)
	})
}

// CreateSale registra uma venda manual
func CreateSale(repo repository.SaleRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var sale domain.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validateSale(&sale); err != nil {
			logger.WithError(err).Warn("sales: invalid sale payload")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		if sale.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				logger.WithError(err).Error("sales: failed to generate sale id")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar venda", nil)
				return
			}
			sale.ID = fmt.Sprintf("SALE-%s", id)
		}
		if sale.Date.IsZero() {
			sale.Date = time.Now().UTC()
		}

		source, err := repo.CreateSale(r.Context(), &sale)
		if err != nil {
			logger.WithError(err).Error("sales: failed to create sale")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":    sale.ID,
			"product_id": sale.ProductID,
			"source":     source,
		}).Info("sales: sale recorded")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"source": source,
			"sale":   sale,
		}); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
		}
	})
}

func parseSaleFilters(r *http.Request) (domain.SaleFilters, error) {
	filters := domain.SaleFilters{
		ProductID: r.URL.Query().Get("product_id"),
		Region:    r.URL.Query().Get("region"),
		Channel:   r.URL.Query().Get("channel"),
	}

	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return filters, errInvalidQueryParam("days", raw)
		}
		start := time.Now().UTC().AddDate(0, 0, -days)
		filters.StartDate = &start
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

	return filters, nil
}

func validateSale(sale *domain.Sale) error {
	switch {
	case sale.ProductID == "":
		return errMissingField("product_id é obrigatório")
	case sale.Quantity < 1:
		return errMissingField("quantity deve ser no mínimo 1")
	case sale.Revenue < 0:
		return errMissingField("revenue não pode ser negativo")
	}

	switch sale.Channel {
	case domain.ChannelOnline, domain.ChannelRetail, domain.ChannelWholesale:
	case "":
		sale.Channel = domain.ChannelOnline
	default:
		return errMissingField(fmt.Sprintf("canal desconhecido: %s", sale.Channel))
	}

	return nil
}
