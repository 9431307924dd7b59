package domain

import "time"

// Seasonality classifica o perfil sazonal de um produto
type Seasonality string

const (
	SeasonalityLow    Seasonality = "low"
	SeasonalityMedium Seasonality = "medium"
	SeasonalityHigh   Seasonality = "high"
)

// Product representa um item do catálogo
type Product struct {
	ID           string      `json:"id" bson:"id"`
	Name         string      `json:"name" bson:"name"`
	Category     string      `json:"category" bson:"category"`
	Price        float64     `json:"price" bson:"price"`
	CurrentStock int         `json:"current_stock" bson:"currentStock"`
	ReorderPoint int         `json:"reorder_point" bson:"reorderPoint"`
	Supplier     string      `json:"supplier" bson:"supplier"`
	Seasonality  Seasonality `json:"seasonality" bson:"seasonality"`
	TrendScore   float64     `json:"trend_score" bson:"trendScore"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// IsLowStock indica se o produto está abaixo do ponto de reposição
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderPoint
}

// ProductFilters são os filtros aceitos pela listagem de produtos
type ProductFilters struct {
	Category string
	Limit    int
	Offset   int
	LowStock bool
}

// ProductPage é a resposta paginada da listagem de produtos
type ProductPage struct {
	Source   DataSource `json:"source"`
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

// UpdateProductRequest carrega campos opcionais para atualização parcial
type UpdateProductRequest struct {
	ID           string       `json:"id"`
	Name         *string      `json:"name,omitempty"`
	Category     *string      `json:"category,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	CurrentStock *int         `json:"current_stock,omitempty"`
	ReorderPoint *int         `json:"reorder_point,omitempty"`
	Supplier     *string      `json:"supplier,omitempty"`
	Seasonality  *Seasonality `json:"seasonality,omitempty"`
	TrendScore   *float64     `json:"trend_score,omitempty"`
}
