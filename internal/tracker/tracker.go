package tracker

import (
    "context"
    "log"
    "time"

    "stocktracker/internal/market"
    "golang.org/x/sync/singleflight"
)

type Config struct {
    // WindowDays is how many calendar days back the history window starts,
    // wide enough to absorb weekends and holidays. Default 10.
    WindowDays int
    // Now is overridable for tests. Defaults to time.Now.
    Now func() time.Time
}

// Tracker runs one lookup per user request: validate, fetch history and
// quote, normalize and summarize. Lookups are stateless relative to each
// other; concurrent lookups for the same symbol coalesce into one upstream
// round trip.
type Tracker struct {
    cfg Config
    src market.Source
    sf  singleflight.Group
}

func New(cfg Config, src market.Source) *Tracker {
    if cfg.WindowDays <= 0 { cfg.WindowDays = 10 }
    if cfg.Now == nil { cfg.Now = time.Now }
    return &Tracker{cfg: cfg, src: src}
}

// Result is one successful lookup.
type Result struct {
    Symbol  string             `json:"symbol"`
    Series  market.PriceSeries `json:"series"`
    Quote   *market.Quote      `json:"quote,omitempty"`
    Summary Summary            `json:"summary"`
}

// Lookup fetches, normalizes, and summarizes data for symbol. The symbol is
// validated before any network call; history errors are terminal, quote
// errors degrade to an absent quote.
func (t *Tracker) Lookup(ctx context.Context, symbol string) (*Result, error) {
    sym := market.NormalizeSymbol(symbol)
    if err := market.ValidateSymbol(sym); err != nil {
        return nil, err
    }
    v, err, _ := t.sf.Do(sym, func() (any, error) {
        // the flight may be shared with later callers, so it must not die
        // with the caller that started it; keep the deadline, drop the
        // cancellation
        fctx := context.WithoutCancel(ctx)
        if dl, ok := ctx.Deadline(); ok {
            var cancel context.CancelFunc
            fctx, cancel = context.WithDeadline(fctx, dl)
            defer cancel()
        }
        return t.lookup(fctx, sym)
    })
    if err != nil {
        return nil, err
    }
    return v.(*Result), nil
}

func (t *Tracker) lookup(ctx context.Context, sym string) (*Result, error) {
    end := t.cfg.Now()
    start := end.AddDate(0, 0, -t.cfg.WindowDays)

    // the two calls are independent; fan out and collect both
    type seriesResult struct {
        series market.PriceSeries
        err    error
    }
    type quoteResult struct {
        quote *market.Quote
        err   error
    }
    sch := make(chan seriesResult, 1)
    qch := make(chan quoteResult, 1)
    go func() {
        s, err := t.src.DailyHistory(ctx, sym, start, end)
        sch <- seriesResult{s, err}
    }()
    go func() {
        q, err := t.src.LatestQuote(ctx, sym)
        qch <- quoteResult{q, err}
    }()

    sres := <-sch
    qres := <-qch
    if sres.err != nil {
        return nil, sres.err
    }
    if len(sres.series) == 0 {
        return nil, market.NewNoDataError(sym)
    }
    quote := qres.quote
    if qres.err != nil {
        log.Printf("[WARN] %s quote fetch failed: %v (continuing without quote)", sym, qres.err)
        quote = nil
    }

    return &Result{
        Symbol:  sym,
        Series:  sres.series,
        Quote:   quote,
        Summary: Summarize(sres.series, quote),
    }, nil
}
