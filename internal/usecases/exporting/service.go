package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format é o formato de serialização da exportação
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat valida o formato pedido na query string
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Errorf("formato de exportação desconhecido: %s", s)
	}
}

// Export é o resultado serializado pronto para download
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter serializa as visões do dashboard em CSV ou JSON
type Exporter interface {
	ExportMetrics(ctx context.Context, format Format) (*Export, error)
	ExportForecast(ctx context.Context, format Format) (*Export, error)
	ExportProducts(ctx context.Context, format Format) (*Export, error)
}

type Service struct {
	analyzer analyzing.Analyzer
}

func NewService(analyzer analyzing.Analyzer) Exporter {
	return &Service{analyzer: analyzer}
}

func (s *Service) ExportMetrics(ctx context.Context, format Format) (*Export, error) {
	overview, err := s.analyzer.MetricsOverview(ctx)
	if err != nil {
		return nil, err
	}

	type metricRow struct {
		Metric string `json:"metric"`
		Value  string `json:"value"`
		Change string `json:"change"`
	}

	rows := []metricRow{
		{Metric: "Total Revenue", Value: overview.RevenueImpact, Change: overview.RevenueImpactChange},
		{Metric: "Forecast Accuracy", Value: overview.ForecastAccuracy, Change: overview.ForecastAccuracyChange},
		{Metric: "Predicted Demand", Value: overview.PredictedDemand, Change: overview.PredictedDemandChange},
		{Metric: "Stock Risk", Value: overview.StockRisk, Change: overview.StockRiskChange},
	}

	if format == FormatJSON {
		return jsonExport("metrics", rows)
	}

	records := [][]string{{"metric", "value", "change"}}
	for _, r := range rows {
		records = append(records, []string{r.Metric, r.Value, r.Change})
	}

	return csvExport("metrics", records)
}

func (s *Service) ExportForecast(ctx context.Context, format Format) (*Export, error) {
	series, err := s.analyzer.DemandForecast(ctx, nil)
	if err != nil {
		return nil, err
	}

	if format == FormatJSON {
		return jsonExport("demand-forecast", series)
	}

	records := [][]string{{"date", "historical", "forecast", "confidence_upper", "confidence_lower"}}
	for _, p := range series.Points {
		var upper, lower string
		if p.Confidence != nil {
			upper = formatFloat(p.Confidence.Upper)
			lower = formatFloat(p.Confidence.Lower)
		}
		records = append(records, []string{
			p.Date,
			formatOptionalFloat(p.Historical),
			formatOptionalFloat(p.Forecast),
			upper,
			lower,
		})
	}

	return csvExport("demand-forecast", records)
}

func (s *Service) ExportProducts(ctx context.Context, format Format) (*Export, error) {
	perf, err := s.analyzer.ProductPerformance(ctx, 100)
	if err != nil {
		return nil, err
	}

	if format == FormatJSON {
		return jsonExport("product-performance", perf)
	}

	records := [][]string{{"id", "name", "category", "sales", "revenue", "trend", "trend_score", "stock", "stock_status"}}
	for _, p := range perf.Products {
		records = append(records, []string{
			p.ID,
			p.Name,
			p.Category,
			strconv.Itoa(p.Sales),
			formatFloat(p.Revenue),
			p.Trend,
			formatFloat(p.TrendScore),
			strconv.Itoa(p.Stock),
			p.StockStatus,
		})
	}

	return csvExport("product-performance", records)
}

func csvExport(prefix string, records [][]string) (*Export, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.WriteAll(records); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar CSV")
	}

	return &Export{
		Filename:    exportFilename(prefix, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func jsonExport(prefix string, payload any) (*Export, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar JSON")
	}

	return &Export{
		Filename:    exportFilename(prefix, "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

func exportFilename(prefix, extension string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, time.Now().UTC().Format("2006-01-02"), extension)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
