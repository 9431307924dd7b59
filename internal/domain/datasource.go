package domain

// DataSource identifica a origem dos dados de uma resposta de analytics:
// o banco de documentos (live) ou o dataset sintético em memória (fallback).
// Consumidores conseguem distinguir dados reais de placeholders.
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceFallback DataSource = "fallback"
)
