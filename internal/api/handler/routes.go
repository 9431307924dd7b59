package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/api/handler/router"
	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
	"github.com/trendai/demand-insights-api/internal/usecases/authenticating"
	"github.com/trendai/demand-insights-api/internal/usecases/exporting"
	"github.com/trendai/demand-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Metrics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/metrics-overview",
			Method:      http.MethodGet,
			Handler:     GetMetricsOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/demand-forecast",
			Method:      http.MethodGet,
			Handler:     GetDemandForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/seasonal-trends",
			Method:      http.MethodGet,
			Handler:     GetSeasonalTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/category-performance",
			Method:      http.MethodGet,
			Handler:     GetCategoryPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/product-performance",
			Method:      http.MethodGet,
			Handler:     GetProductPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/actionable-insights",
			Method:      http.MethodGet,
			Handler:     GetActionableInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/external-signals",
			Method:      http.MethodGet,
			Handler:     GetExternalSignals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(repo repository.ProductRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Sales(repo repository.SaleRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/auth/profile",
			Method:      http.MethodGet,
			Handler:     GetProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/auth/profile",
			Method:      http.MethodPut,
			Handler:     UpdateProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/auth/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdminUsers(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodPost,
			Handler:     AdminCreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:email/status",
			Method:      http.MethodPatch,
			Handler:     SetUserStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/users/:email/reset-password",
			Method:      http.MethodPost,
			Handler:     ResetPassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/metrics",
			Method:      http.MethodGet,
			Handler:     ExportMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/forecast",
			Method:      http.MethodGet,
			Handler:     ExportForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/products",
			Method:      http.MethodGet,
			Handler:     ExportProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Database(connector *mongodb.Connector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/database/status",
			Method:      http.MethodGet,
			Handler:     DatabaseStatus(connector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SnapshotSync(services SnapshotSyncServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/snapshot/run",
			Method:      http.MethodPost,
			Handler:     RunSnapshotSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSnapshotSyncStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
