package domain

// Confidence é a banda de confiança de um ponto de previsão
type Confidence struct {
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// ForecastPoint é um ponto da série de previsão de demanda. Exatamente um
// entre Historical e Forecast é não-nulo; o ponto de junção entre histórico
// e previsão carrega apenas Historical.
type ForecastPoint struct {
	Date       string      `json:"date"`
	Historical *float64    `json:"historical"`
	Forecast   *float64    `json:"forecast"`
	Confidence *Confidence `json:"confidence"`
}

// ForecastSeries é a resposta completa da previsão de demanda
type ForecastSeries struct {
	Source DataSource       `json:"source"`
	Period string           `json:"period"`
	Points []*ForecastPoint `json:"points"`
}

// ForecastPeriod parametriza a quantidade de pontos da série
type ForecastPeriod struct {
	ID   string // 7d, 30d, 90d, 1y, custom
	Days int    // apenas para custom
}

// SeasonalTrend é a linha de um mês na visão de sazonalidade
type SeasonalTrend struct {
	Month      string  `json:"month"`
	Demand     int     `json:"demand"`
	Forecast   int     `json:"forecast"`
	Confidence float64 `json:"confidence"` // placeholder
}

// SeasonalTrendsResponse agrupa os 12 meses com a origem dos dados
type SeasonalTrendsResponse struct {
	Source DataSource       `json:"source"`
	Months []*SeasonalTrend `json:"months"`
}
