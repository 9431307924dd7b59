package domain

import "time"

// Channel é o canal de venda
type Channel string

const (
	ChannelOnline    Channel = "online"
	ChannelRetail    Channel = "retail"
	ChannelWholesale Channel = "wholesale"
)

// Sale representa uma transação de venda. O campo Revenue é armazenado de
// forma independente de Quantity × preço unitário (descontos continuam
// representáveis).
type Sale struct {
	ID        string    `json:"id" bson:"id"`
	ProductID string    `json:"product_id" bson:"productId"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Revenue   float64   `json:"revenue" bson:"revenue"`
	Channel   Channel   `json:"channel" bson:"channel"`
	Region    string    `json:"region" bson:"region"`
	Date      time.Time `json:"date" bson:"date"`
}

// SaleFilters são os filtros aceitos pela listagem de vendas
type SaleFilters struct {
	ProductID string
	Region    string
	Channel   string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// SalePage é a resposta paginada da listagem de vendas
type SalePage struct {
	Source DataSource `json:"source"`
	Sales  []*Sale    `json:"sales"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
}
