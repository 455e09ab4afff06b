package twelvedataadapter

import (
    "testing"
    "time"

    "stocktracker/internal/twelvedata"
)

func day(s string) time.Time {
    t, err := time.Parse("2006-01-02", s)
    if err != nil { panic(err) }
    return t
}

func TestNormalize_NineRecords_KeepsSevenMostRecentAscending(t *testing.T) {
    // provider order is unspecified; hand the records over shuffled
    dates := []string{
        "2025-08-27", "2025-08-19", "2025-08-29", "2025-08-21", "2025-08-25",
        "2025-08-20", "2025-08-28", "2025-08-22", "2025-08-26",
    }
    values := make([]twelvedata.TimeSeriesValue, 0, len(dates))
    for _, d := range dates {
        values = append(values, twelvedata.TimeSeriesValue{
            Datetime: d, Open: "10", High: "11", Low: "9", Close: "10.5", Volume: "1000",
        })
    }

    series, err := Normalize(values, 7)
    if err != nil {
        t.Fatalf("normalize: %v", err)
    }
    if len(series) != 7 {
        t.Fatalf("want 7 bars, got %d", len(series))
    }
    // the two oldest records (08-19, 08-20) must be gone
    if !series[0].Date.Equal(day("2025-08-21")) {
        t.Fatalf("expected oldest kept bar 2025-08-21, got %s", series[0].Date)
    }
    if !series[6].Date.Equal(day("2025-08-29")) {
        t.Fatalf("expected newest bar 2025-08-29, got %s", series[6].Date)
    }
    for i := 1; i < len(series); i++ {
        if !series[i-1].Date.Before(series[i].Date) {
            t.Fatalf("series not ascending at %d: %s >= %s", i, series[i-1].Date, series[i].Date)
        }
    }
}

func TestNormalize_FewerThanKeep_RetainsAll(t *testing.T) {
    values := []twelvedata.TimeSeriesValue{
        {Datetime: "2025-08-28", Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10"},
        {Datetime: "2025-08-27", Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10"},
    }
    series, err := Normalize(values, 7)
    if err != nil {
        t.Fatalf("normalize: %v", err)
    }
    if len(series) != 2 {
        t.Fatalf("want 2 bars, got %d", len(series))
    }
}

func TestNormalize_BadNumericFieldsCoerceToNil(t *testing.T) {
    values := []twelvedata.TimeSeriesValue{
        {Datetime: "2025-08-28", Open: "n/a", High: "233.40", Low: "", Close: "232.56", Volume: "oops"},
    }
    series, err := Normalize(values, 7)
    if err != nil {
        t.Fatalf("normalize: %v", err)
    }
    if len(series) != 1 {
        t.Fatalf("record should be kept, got %d bars", len(series))
    }
    b := series[0]
    if b.Open != nil || b.Low != nil || b.Volume != nil {
        t.Fatalf("unparsable fields should be nil: %+v", b)
    }
    if b.High == nil || *b.High != 233.40 {
        t.Fatalf("high should parse: %+v", b.High)
    }
    if b.Close == nil || *b.Close != 232.56 {
        t.Fatalf("close should parse: %+v", b.Close)
    }
}

func TestNormalize_DecimalVolume(t *testing.T) {
    values := []twelvedata.TimeSeriesValue{
        {Datetime: "2025-08-28", Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "41234500.0"},
    }
    series, err := Normalize(values, 7)
    if err != nil {
        t.Fatalf("normalize: %v", err)
    }
    if series[0].Volume == nil || *series[0].Volume != 41234500 {
        t.Fatalf("decimal volume should coerce to int: %+v", series[0].Volume)
    }
}

func TestNormalize_BadDate_Errors(t *testing.T) {
    values := []twelvedata.TimeSeriesValue{
        {Datetime: "yesterday", Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10"},
    }
    if _, err := Normalize(values, 7); err == nil {
        t.Fatal("expected error for unparsable datetime")
    }
}

func TestNormalize_DatetimeWithClock(t *testing.T) {
    values := []twelvedata.TimeSeriesValue{
        {Datetime: "2025-08-28 00:00:00", Open: "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10"},
    }
    series, err := Normalize(values, 7)
    if err != nil {
        t.Fatalf("normalize: %v", err)
    }
    if !series[0].Date.Equal(day("2025-08-28")) {
        t.Fatalf("unexpected date: %s", series[0].Date)
    }
}
