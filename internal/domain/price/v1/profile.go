package v1

import (
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
)

// DefaultMinPrice is the floor applied to synthesized prices when a profile sets none.
const DefaultMinPrice = 0.01

// Range is a closed float interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// AssetProfile parameterises the synthesizer for one asset.
type AssetProfile struct {
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"`
	BaseAsset  string `yaml:"base_asset"`
	QuoteAsset string `yaml:"quote_asset"`
	Collection string `yaml:"collection"`

	StartPrice  float64 `yaml:"start_price"`
	OpenJitter  float64 `yaml:"open_jitter"`
	CloseJitter float64 `yaml:"close_jitter"`
	WickJitter  float64 `yaml:"wick_jitter"`
	MinPrice    float64 `yaml:"min_price"`

	Volume     Range    `yaml:"volume"`
	TradeCount IntRange `yaml:"trade_count"`
}

// WithDefaults fills optional fields.
func (p AssetProfile) WithDefaults() AssetProfile {
	if p.MinPrice == 0 {
		p.MinPrice = DefaultMinPrice
	}
	return p
}

// Validate returns a *errors.BaseError listing every invalid field, or nil.
func (p AssetProfile) Validate() error {
	baseErr := errors.NewBaseError()
	code := string(errors.InvalidProfileField)

	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"symbol", p.Symbol},
		{"base_asset", p.BaseAsset},
		{"quote_asset", p.QuoteAsset},
		{"collection", p.Collection},
	}
	for _, r := range required {
		if r.value == "" {
			baseErr.AddErrorDetails(errors.NewErrorDetails(r.field+" is required", code, r.field))
		}
	}

	if p.MinPrice < DefaultMinPrice {
		baseErr.AddErrorDetails(errors.NewErrorDetails("min price must be at least one cent", code, "min_price"))
	}
	if p.StartPrice < p.MinPrice || p.StartPrice <= 0 {
		baseErr.AddErrorDetails(errors.NewErrorDetails("start price must be positive and not below min price", code, "start_price"))
	}

	jitters := []struct {
		field string
		value float64
	}{
		{"open_jitter", p.OpenJitter},
		{"close_jitter", p.CloseJitter},
		{"wick_jitter", p.WickJitter},
	}
	for _, j := range jitters {
		if j.value < 0 {
			baseErr.AddErrorDetails(errors.NewErrorDetails(j.field+" must not be negative", code, j.field))
		}
	}

	if p.Volume.Min < 0 || p.Volume.Min > p.Volume.Max {
		baseErr.AddErrorDetails(errors.NewErrorDetailsWithObject("volume range is invalid", code, "volume", p.Volume))
	}
	if p.TradeCount.Min < 0 || p.TradeCount.Min > p.TradeCount.Max {
		baseErr.AddErrorDetails(errors.NewErrorDetailsWithObject("trade count range is invalid", code, "trade_count", p.TradeCount))
	}

	if !baseErr.HasDetails() {
		return nil
	}
	return baseErr
}
