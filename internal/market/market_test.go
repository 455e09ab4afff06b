package market

import (
    "errors"
    "fmt"
    "testing"
)

func fp(v float64) *float64 { return &v }

func TestNormalizeSymbol(t *testing.T) {
    cases := []struct {
        in, want string
    }{
        {"aapl", "AAPL"},
        {"  msft  ", "MSFT"},
        {"BRK.B", "BRK.B"},
        {"", ""},
    }
    for _, c := range cases {
        if got := NormalizeSymbol(c.in); got != c.want {
            t.Fatalf("NormalizeSymbol(%q) = %q, want %q", c.in, got, c.want)
        }
    }
}

func TestValidateSymbol(t *testing.T) {
    if err := ValidateSymbol("AAPL"); err != nil {
        t.Fatalf("AAPL should validate: %v", err)
    }
    if err := ValidateSymbol("ABCDEFGHIJ"); err != nil {
        t.Fatalf("10 characters should validate: %v", err)
    }
    for _, symbol := range []string{"", "ABCDEFGHIJK"} {
        err := ValidateSymbol(symbol)
        if KindOf(err) != KindValidation {
            t.Fatalf("ValidateSymbol(%q): want validation error, got %v", symbol, err)
        }
    }
}

func TestPriceSeries_HighLow(t *testing.T) {
    series := PriceSeries{
        {High: fp(152.2), Low: fp(149.9)},
        {High: nil, Low: nil},
        {High: fp(155), Low: fp(148)},
    }
    if h := series.HighestHigh(); h == nil || *h != 155 {
        t.Fatalf("highest high = %v, want 155", h)
    }
    if l := series.LowestLow(); l == nil || *l != 148 {
        t.Fatalf("lowest low = %v, want 148", l)
    }
}

func TestPriceSeries_HighLow_AllNil(t *testing.T) {
    series := PriceSeries{{}, {}}
    if series.HighestHigh() != nil || series.LowestLow() != nil {
        t.Fatal("series without numeric fields should yield nil extremes")
    }
}

func TestError_Unwrap(t *testing.T) {
    cause := errors.New("connection refused")
    err := NewNetworkError("AAPL", cause)
    if !errors.Is(err, cause) {
        t.Fatal("cause should be reachable through Unwrap")
    }
    if KindOf(err) != KindNetwork {
        t.Fatalf("kind = %v, want network", KindOf(err))
    }
    if KindOf(fmt.Errorf("wrapped: %w", err)) != KindNetwork {
        t.Fatal("KindOf should see through wrapping")
    }
    if KindOf(errors.New("plain")) != KindUnknown {
        t.Fatal("plain errors are unknown")
    }
}

func TestNoDataError_Message(t *testing.T) {
    err := NewNoDataError("XYZ")
    if err.Message != "no data found for symbol XYZ" {
        t.Fatalf("message = %q", err.Message)
    }
    if KindOf(err) != KindNoData {
        t.Fatalf("kind = %v, want no_data", KindOf(err))
    }
}
