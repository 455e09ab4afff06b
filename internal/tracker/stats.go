package tracker

import (
    "fmt"

    "stocktracker/internal/market"
)

// Summary holds the derived statistics displayed above the chart. Every
// field is independently optional; absence of one never blocks the others.
type Summary struct {
    CurrentPrice  *float64 `json:"current_price,omitempty"`
    Change        *float64 `json:"change,omitempty"`
    PercentChange *float64 `json:"percent_change,omitempty"`
    WeekHigh      *float64 `json:"week_high,omitempty"`
    WeekLow       *float64 `json:"week_low,omitempty"`
}

// Formatted is the display rendering of a Summary. Empty strings mark
// absent values.
type Formatted struct {
    CurrentPrice string `json:"current_price,omitempty"`
    DailyChange  string `json:"daily_change,omitempty"`
    WeekHigh     string `json:"week_high,omitempty"`
    WeekLow      string `json:"week_low,omitempty"`
}

// Summarize derives the metric tiles from a series and an optional quote.
func Summarize(series market.PriceSeries, quote *market.Quote) Summary {
    s := Summary{
        WeekHigh: series.HighestHigh(),
        WeekLow:  series.LowestLow(),
    }
    if quote != nil {
        s.CurrentPrice = quote.Close
        s.Change = quote.Change
        s.PercentChange = quote.PercentChange
    }
    return s
}

// Format renders the summary for display.
func (s Summary) Format() Formatted {
    var f Formatted
    if s.CurrentPrice != nil {
        f.CurrentPrice = FormatUSD(*s.CurrentPrice)
    }
    if s.Change != nil && s.PercentChange != nil {
        f.DailyChange = FormatChange(*s.Change, *s.PercentChange)
    }
    if s.WeekHigh != nil {
        f.WeekHigh = FormatUSD(*s.WeekHigh)
    }
    if s.WeekLow != nil {
        f.WeekLow = FormatUSD(*s.WeekLow)
    }
    return f
}

// FormatUSD renders a price with the sign ahead of the dollar glyph:
// 150.25 -> "$150.25", -1.5 -> "-$1.50".
func FormatUSD(v float64) string {
    if v < 0 {
        return fmt.Sprintf("-$%.2f", -v)
    }
    return fmt.Sprintf("$%.2f", v)
}

// FormatChange renders a daily change with its percentage:
// (-1.5, -0.99) -> "-$1.50 (-0.99%)".
func FormatChange(change, percent float64) string {
    return fmt.Sprintf("%s (%.2f%%)", FormatUSD(change), percent)
}
