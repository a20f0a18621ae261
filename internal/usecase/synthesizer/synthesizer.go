package synthesizer

import (
	"iter"
	"math"
	"math/rand/v2"
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
	"github.com/shopspring/decimal"
)

const (
	pricePlaces      = 2
	baseVolumePlaces = 8
)

// Synthesizer produces a bounded random walk of records for one asset profile, one minute apart by default.
type Synthesizer struct {
	profile v1.AssetProfile
	rnd     *rand.Rand
	step    interval.Interval
}

// Option configures a Synthesizer.
type Option func(s *Synthesizer)

// WithInterval sets the spacing between records. Defaults to one minute.
func WithInterval(step interval.Interval) Option {
	return func(s *Synthesizer) {
		s.step = step
	}
}

// New creates a Synthesizer. The profile is validated after defaults are applied.
func New(profile v1.AssetProfile, src rand.Source, opts ...Option) (*Synthesizer, error) {
	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		return nil, errors.NewConfigurationFault("invalid asset profile "+profile.Name, err)
	}

	s := &Synthesizer{
		profile: profile,
		rnd:     rand.New(src),
		step:    interval.Interval1m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewSource returns a PCG source for seed. A zero seed picks a random one.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// Profile returns the profile with defaults applied.
func (s *Synthesizer) Profile() v1.AssetProfile {
	return s.profile
}

// Interval returns the spacing between records.
func (s *Synthesizer) Interval() interval.Interval {
	return s.step
}

// Count returns the number of records Records yields for the same range.
func (s *Synthesizer) Count(start, end time.Time) int {
	return s.step.Steps(start.UTC(), end.UTC())
}

// Records yields one record per whole interval in [start, end]. An unaligned
// start rounds up to the next interval boundary. The walk starts at the profile's start price and
// each record's open is drawn around the previous record's close.
//
// The sequence draws from the Synthesizer's random source, so ranging over it
// twice yields two different walks.
func (s *Synthesizer) Records(start, end time.Time) iter.Seq[*v1.Record] {
	return func(yield func(*v1.Record) bool) {
		last := end.UTC()
		anchor := s.profile.StartPrice

		for ts := s.step.FirstBucketAtOrAfter(start.UTC()); !ts.After(last); ts = ts.Add(s.step.Duration) {
			record := s.next(anchor, ts)
			anchor = record.Close

			if !yield(record) {
				return
			}
		}
	}
}

func (s *Synthesizer) next(anchor float64, ts time.Time) *v1.Record {
	p := s.profile

	open := math.Max(anchor+s.uniform(-p.OpenJitter, p.OpenJitter), p.MinPrice)
	closePrice := math.Max(open+s.uniform(-p.CloseJitter, p.CloseJitter), p.MinPrice)
	high := math.Max(open, closePrice) + s.uniform(0, p.WickJitter)
	low := math.Max(math.Min(open, closePrice)-s.uniform(0, p.WickJitter), p.MinPrice)

	volumeQuote := round(s.uniform(p.Volume.Min, p.Volume.Max), pricePlaces)
	tradeCount := s.randint(p.TradeCount.Min, p.TradeCount.Max)

	closeRounded := round(closePrice, pricePlaces)

	return &v1.Record{
		Timestamp:   ts,
		Symbol:      p.Symbol,
		BaseAsset:   p.BaseAsset,
		QuoteAsset:  p.QuoteAsset,
		Open:        round(open, pricePlaces),
		High:        round(high, pricePlaces),
		Low:         round(low, pricePlaces),
		Close:       closeRounded,
		VolumeQuote: volumeQuote,
		VolumeBase:  baseVolume(volumeQuote, closeRounded),
		TradeCount:  tradeCount,
	}
}

func (s *Synthesizer) uniform(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *Synthesizer) randint(lo, hi int64) int64 {
	return lo + s.rnd.Int64N(hi-lo+1)
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// baseVolume divides the rounded quote volume by the rounded close of the same record.
func baseVolume(volumeQuote, closePrice float64) float64 {
	return decimal.NewFromFloat(volumeQuote).
		Div(decimal.NewFromFloat(closePrice)).
		Round(baseVolumePlaces).
		InexactFloat64()
}
