package price

import (
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
)

// Document is the bson shape of a price record.
type Document struct {
	Timestamp   time.Time `bson:"timestamp"`
	Symbol      string    `bson:"symbol"`
	BaseAsset   string    `bson:"base_asset"`
	QuoteAsset  string    `bson:"quote_asset"`
	Open        float64   `bson:"open"`
	High        float64   `bson:"high"`
	Low         float64   `bson:"low"`
	Close       float64   `bson:"close"`
	VolumeQuote float64   `bson:"volume_quote"`
	VolumeBase  float64   `bson:"volume_base"`
	TradeCount  int64     `bson:"trade_count"`
}

// NewDocument converts a record to its bson document.
func NewDocument(r *v1.Record) Document {
	return Document{
		Timestamp:   r.Timestamp.UTC(),
		Symbol:      r.Symbol,
		BaseAsset:   r.BaseAsset,
		QuoteAsset:  r.QuoteAsset,
		Open:        r.Open,
		High:        r.High,
		Low:         r.Low,
		Close:       r.Close,
		VolumeQuote: r.VolumeQuote,
		VolumeBase:  r.VolumeBase,
		TradeCount:  r.TradeCount,
	}
}

type closeDocument struct {
	Timestamp time.Time `bson:"timestamp"`
	Close     float64   `bson:"close"`
}
