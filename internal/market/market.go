package market

import (
    "context"
    "strings"
    "time"
)

// DailyBar is one trading day's OHLCV record. Numeric fields are pointers so
// a single unparsable field from the provider never drops the whole record.
type DailyBar struct {
    Date   time.Time `json:"date"`
    Open   *float64  `json:"open"`
    High   *float64  `json:"high"`
    Low    *float64  `json:"low"`
    Close  *float64  `json:"close"`
    Volume *int64    `json:"volume"`
}

// PriceSeries is an ordered sequence of daily bars, oldest first.
type PriceSeries []DailyBar

// HighestHigh returns the maximum bar high over the series, nil when no bar
// carries a high.
func (s PriceSeries) HighestHigh() *float64 {
    var max *float64
    for _, b := range s {
        if b.High == nil { continue }
        if max == nil || *b.High > *max {
            v := *b.High
            max = &v
        }
    }
    return max
}

// LowestLow returns the minimum bar low over the series, nil when no bar
// carries a low.
func (s PriceSeries) LowestLow() *float64 {
    var min *float64
    for _, b := range s {
        if b.Low == nil { continue }
        if min == nil || *b.Low < *min {
            v := *b.Low
            min = &v
        }
    }
    return min
}

// Quote is a current-price snapshot. Any field may be absent.
type Quote struct {
    Close         *float64 `json:"close"`
    Change        *float64 `json:"change"`
    PercentChange *float64 `json:"percent_change"`
}

// Source fetches market data for a symbol. Implementations own the provider
// wire format; callers only ever see the normalized shapes above.
type Source interface {
    Name() string
    DailyHistory(ctx context.Context, symbol string, start, end time.Time) (PriceSeries, error)
    LatestQuote(ctx context.Context, symbol string) (*Quote, error)
}

const maxSymbolLen = 10

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(symbol string) string {
    return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol checks the 1-10 character constraint on an already
// normalized symbol.
func ValidateSymbol(symbol string) error {
    if len(symbol) < 1 || len(symbol) > maxSymbolLen {
        return NewValidationError(symbol, "symbol must be 1-10 characters")
    }
    return nil
}
