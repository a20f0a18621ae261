package v1

import (
	"time"

	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
)

// Schema field names shared by every store driver.
const (
	FieldTimestamp   = "timestamp"
	FieldSymbol      = "symbol"
	FieldBaseAsset   = "base_asset"
	FieldQuoteAsset  = "quote_asset"
	FieldOpen        = "open"
	FieldHigh        = "high"
	FieldLow         = "low"
	FieldClose       = "close"
	FieldVolumeQuote = "volume_quote"
	FieldVolumeBase  = "volume_base"
	FieldTradeCount  = "trade_count"
)

// Columns lists the persisted fields in storage order.
var Columns = []string{
	FieldTimestamp,
	FieldSymbol,
	FieldBaseAsset,
	FieldQuoteAsset,
	FieldOpen,
	FieldHigh,
	FieldLow,
	FieldClose,
	FieldVolumeQuote,
	FieldVolumeBase,
	FieldTradeCount,
}

// Record is one simulated minute of market activity for a symbol.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	Symbol      string    `json:"symbol"`
	BaseAsset   string    `json:"base_asset"`
	QuoteAsset  string    `json:"quote_asset"`
	Open        float64   `json:"open"`
	High        float64   `json:"high"`
	Low         float64   `json:"low"`
	Close       float64   `json:"close"`
	VolumeQuote float64   `json:"volume_quote"`
	VolumeBase  float64   `json:"volume_base"`
	TradeCount  int64     `json:"trade_count"`
}

// Values returns the record's fields in Columns order.
func (r *Record) Values() []any {
	return []any{
		r.Timestamp,
		r.Symbol,
		r.BaseAsset,
		r.QuoteAsset,
		r.Open,
		r.High,
		r.Low,
		r.Close,
		r.VolumeQuote,
		r.VolumeBase,
		r.TradeCount,
	}
}

// CollectionSpec describes a time-bucketed container for records.
type CollectionSpec struct {
	Name        string
	TimeField   string
	MetaField   string
	Granularity string
}

// NewCollectionSpec returns the spec for a minute series keyed by timestamp and symbol.
func NewCollectionSpec(name string) CollectionSpec {
	return CollectionSpec{
		Name:        name,
		TimeField:   FieldTimestamp,
		MetaField:   FieldSymbol,
		Granularity: interval.Interval1m.Granularity,
	}
}

// ForInterval returns a copy of c bucketed for records step apart.
func (c CollectionSpec) ForInterval(step interval.Interval) CollectionSpec {
	c.Granularity = step.Granularity
	return c
}

// WindowFilter represents the filter criteria for a close-price window.
// From and To are inclusive; nil leaves the side open.
type WindowFilter struct {
	Collection string
	Symbol     string
	From       *time.Time
	To         *time.Time
}

// ClosePoint is the {timestamp, close} projection of a Record.
type ClosePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
}

// AveragedPoint is a ClosePoint with an optional trailing average of close.
type AveragedPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	Close          float64   `json:"close"`
	RollingAverage *float64  `json:"avgPrice_10day,omitempty"`
}

// WriteMode selects what happens to existing data before an ingest run.
type WriteMode string

const (
	// WriteModeAppend keeps existing records; a re-run adds a second data set.
	WriteModeAppend WriteMode = "append"
	// WriteModeReplace drops the collection before writing.
	WriteModeReplace WriteMode = "replace"
)

// IsValid reports whether m is a known write mode.
func (m WriteMode) IsValid() bool {
	return m == WriteModeAppend || m == WriteModeReplace
}

// IngestSummary reports what an ingest run wrote.
type IngestSummary struct {
	Collection    string
	Records       int
	Batches       int
	LastBatchSize int
}

// ChartResult reports the outcome of a render.
type ChartResult struct {
	Rendered bool
	Path     string
	Points   int
}

// ChartSpec describes how a close-price series is drawn.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are in inches.
	Width  float64
	Height float64
	Path   string
}
