package domain

// Insight é uma recomendação acionável derivada do estado do catálogo
type Insight struct {
	Type        string `json:"type"`     // alert | opportunity
	Priority    string `json:"priority"` // high | medium | low
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Impact      string `json:"impact"`
}

// InsightsResponse agrupa os insights com a origem dos dados
type InsightsResponse struct {
	Source   DataSource `json:"source"`
	Insights []*Insight `json:"insights"`
}

// CategoryPerformance é o rollup de receita por categoria
type CategoryPerformance struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Growth   float64 `json:"growth"` // placeholder, não derivado de histórico
	Products int     `json:"products"`
}

// CategoryPerformanceResponse agrupa as categorias com a origem dos dados
type CategoryPerformanceResponse struct {
	Source     DataSource             `json:"source"`
	Categories []*CategoryPerformance `json:"categories"`
}

// ProductPerformance é a linha de um produto no ranking de performance
type ProductPerformance struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Sales       int     `json:"sales"`
	Revenue     float64 `json:"revenue"`
	Trend       string  `json:"trend"` // up | stable | down
	TrendScore  float64 `json:"trend_score"`
	Stock       int     `json:"stock"`
	StockStatus string  `json:"stock_status"` // low | medium | high
}

// ProductPerformanceResponse agrupa o ranking com a origem dos dados
type ProductPerformanceResponse struct {
	Source   DataSource            `json:"source"`
	Products []*ProductPerformance `json:"products"`
}

// ExternalSignal é um sinal externo curado exibido no dashboard
type ExternalSignal struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"` // weather | social | economic | competitor | event
	Impact      string  `json:"impact"`
	Strength    float64 `json:"strength"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}
