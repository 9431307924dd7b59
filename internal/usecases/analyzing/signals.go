package analyzing

import "github.com/trendai/demand-insights-api/internal/domain"

// externalSignals devolve a lista curada exibida no painel. Viria de APIs
// externas (clima, social, indicadores) numa integração real; hoje é um
// conjunto fixo de exemplos.
func externalSignals() []*domain.ExternalSignal {
	return []*domain.ExternalSignal{
		{
			Date:        "Jan 15",
			Type:        "weather",
			Impact:      "positive",
			Strength:    8.5,
			Description: "Unusually cold winter driving demand for winter clothing",
			Source:      "Weather API",
		},
		{
			Date:        "Jan 20",
			Type:        "social",
			Impact:      "positive",
			Strength:    9.2,
			Description: "Viral TikTok trend featuring fitness trackers",
			Source:      "Social Media Analytics",
		},
		{
			Date:        "Jan 25",
			Type:        "economic",
			Impact:      "negative",
			Strength:    6.8,
			Description: "Consumer spending down 3% due to inflation concerns",
			Source:      "Economic Indicators",
		},
		{
			Date:        "Feb 01",
			Type:        "competitor",
			Impact:      "negative",
			Strength:    7.5,
			Description: "Major competitor launched similar product at 20% lower price",
			Source:      "Competitive Intelligence",
		},
		{
			Date:        "Feb 05",
			Type:        "event",
			Impact:      "positive",
			Strength:    8.9,
			Description: "Valentine's Day approaching - jewelry and gift demand surge",
			Source:      "Calendar Events",
		},
	}
}
