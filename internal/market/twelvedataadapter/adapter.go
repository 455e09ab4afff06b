package twelvedataadapter

import (
    "context"
    "errors"
    "net/url"
    "strconv"
    "time"

    "stocktracker/internal/market"
    "stocktracker/internal/twelvedata"
)

type Config struct {
    Name     string // display name, default: TwelveData
    Interval string // bar interval, default: 1day
    // MaxBars truncates the normalized series to the most recent N bars.
    // Default 7; <= 0 keeps everything.
    MaxBars int
}

// Adapter converts Twelve Data payloads into the market domain shapes.
type Adapter struct {
    cfg    Config
    client *twelvedata.TwelveDataAPIClient
}

func New(cfg Config, client *twelvedata.TwelveDataAPIClient) *Adapter {
    if cfg.Name == "" { cfg.Name = "TwelveData" }
    if cfg.Interval == "" { cfg.Interval = "1day" }
    if cfg.MaxBars == 0 { cfg.MaxBars = 7 }
    return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// DailyHistory fetches the [start, end] window of daily bars for symbol and
// normalizes them: oldest first, most recent MaxBars kept.
func (a *Adapter) DailyHistory(ctx context.Context, symbol string, start, end time.Time) (market.PriceSeries, error) {
    values, err := a.client.TimeSeries(ctx, symbol, a.cfg.Interval, start, end)
    if err != nil {
        return nil, mapError(symbol, err)
    }
    if len(values) == 0 {
        return nil, market.NewNoDataError(symbol)
    }
    series, err := Normalize(values, a.cfg.MaxBars)
    if err != nil {
        return nil, market.NewParseError(symbol, err)
    }
    if len(series) == 0 {
        return nil, market.NewNoDataError(symbol)
    }
    return series, nil
}

// LatestQuote fetches the current quote for symbol. Callers treat failures
// here as non-fatal; the adapter itself reports them normally.
func (a *Adapter) LatestQuote(ctx context.Context, symbol string) (*market.Quote, error) {
    v, err := a.client.Quote(ctx, symbol)
    if err != nil {
        return nil, mapError(symbol, err)
    }
    return &market.Quote{
        Close:         parseFloat(v.Close),
        Change:        parseFloat(v.Change),
        PercentChange: parseFloat(v.PercentChange),
    }, nil
}

// mapError classifies a client error into the lookup taxonomy.
func mapError(symbol string, err error) error {
    var apiErr *twelvedata.APIError
    if errors.As(err, &apiErr) {
        return market.NewAPIError(symbol, apiErr.Message, apiErr)
    }
    var urlErr *url.Error
    if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
        return market.NewNetworkError(symbol, err)
    }
    return market.NewParseError(symbol, err)
}

func parseFloat(s string) *float64 {
    if s == "" { return nil }
    v, err := strconv.ParseFloat(s, 64)
    if err != nil { return nil }
    return &v
}

func parseInt(s string) *int64 {
    if s == "" { return nil }
    v, err := strconv.ParseInt(s, 10, 64)
    if err != nil {
        // some plans report volume as a decimal string
        if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
            n := int64(f)
            return &n
        }
        return nil
    }
    return &v
}
