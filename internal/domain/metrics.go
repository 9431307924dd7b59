package domain

import "time"

// Metrics é o snapshot derivado de uma janela de vendas. Recalculado a cada
// requisição; nunca mutado em armazenamento (exceto pela persistência
// periódica opcional de snapshots).
type Metrics struct {
	Source         DataSource `json:"source" bson:"-"`
	Period         string     `json:"period" bson:"period"`
	TotalRevenue   float64    `json:"total_revenue" bson:"totalRevenue"`
	TotalOrders    int        `json:"total_orders" bson:"totalOrders"`
	AvgOrderValue  float64    `json:"avg_order_value" bson:"avgOrderValue"`
	TotalQuantity  int        `json:"total_quantity" bson:"totalQuantity"`
	ConversionRate float64    `json:"conversion_rate" bson:"conversionRate"` // placeholder, sem fonte real de visitas
	Timestamp      time.Time  `json:"timestamp" bson:"timestamp"`
}

// MetricsOverview são os cartões de destaque do dashboard. Os campos de
// variação e acurácia são placeholders fixos (não há modelo real).
type MetricsOverview struct {
	Source                 DataSource `json:"source"`
	ForecastAccuracy       string     `json:"forecast_accuracy"`
	ForecastAccuracyChange string     `json:"forecast_accuracy_change"`
	PredictedDemand        string     `json:"predicted_demand"`
	PredictedDemandChange  string     `json:"predicted_demand_change"`
	StockRisk              string     `json:"stock_risk"`
	StockRiskChange        string     `json:"stock_risk_change"`
	RevenueImpact          string     `json:"revenue_impact"`
	RevenueImpactChange    string     `json:"revenue_impact_change"`
}
