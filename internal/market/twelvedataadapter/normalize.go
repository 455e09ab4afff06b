package twelvedataadapter

import (
    "fmt"
    "sort"
    "time"

    "stocktracker/internal/market"
    "stocktracker/internal/twelvedata"
)

// dateLayouts covers the datetime shapes Twelve Data emits for daily bars.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// Normalize turns raw time-series values (order unspecified by the provider)
// into an ascending PriceSeries holding at most keep bars. Unparsable numeric
// fields coerce to nil rather than dropping the record; an unparsable date is
// an error because the bar cannot be ordered without one.
func Normalize(values []twelvedata.TimeSeriesValue, keep int) (market.PriceSeries, error) {
    series := make(market.PriceSeries, 0, len(values))
    for _, v := range values {
        date, err := parseDate(v.Datetime)
        if err != nil {
            return nil, fmt.Errorf("parse datetime %q: %w", v.Datetime, err)
        }
        series = append(series, market.DailyBar{
            Date:   date,
            Open:   parseFloat(v.Open),
            High:   parseFloat(v.High),
            Low:    parseFloat(v.Low),
            Close:  parseFloat(v.Close),
            Volume: parseInt(v.Volume),
        })
    }

    // charting downstream assumes ascending dates
    sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

    if keep > 0 && len(series) > keep {
        series = series[len(series)-keep:]
    }
    return series, nil
}

func parseDate(s string) (time.Time, error) {
    var lastErr error
    for _, layout := range dateLayouts {
        t, err := time.Parse(layout, s)
        if err == nil {
            return t, nil
        }
        lastErr = err
    }
    return time.Time{}, lastErr
}
