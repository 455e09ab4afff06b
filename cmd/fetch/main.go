package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "os"
    "time"

    "stocktracker/internal/config"
    "stocktracker/internal/httpx"
    "stocktracker/internal/market/twelvedataadapter"
    "stocktracker/internal/tracker"
    "stocktracker/internal/twelvedata"
)

func main() {
    var symbol string
    var timeout int
    var configPath string

    flag.StringVar(&symbol, "symbol", getenv("SYMBOL", "AAPL"), "ticker symbol to look up")
    flag.IntVar(&timeout, "timeout", 0, "request timeout seconds (overrides config when set)")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json or config.yaml (optional)")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    cfg.Server.RequestTimeoutSec = effectiveTimeout(timeout, cfg.Server.RequestTimeoutSec)
    if cfg.TwelveData.Demo {
        log.Println("warning: TWELVE_DATA_API_KEY not set; using the \"demo\" credential")
    }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    td, err := twelvedata.NewTwelveDataAPIClient(
        cfg.TwelveData.APIKey,
        twelvedata.WithBaseURL(cfg.TwelveData.BaseURL),
        twelvedata.WithHTTPClient(httpClient),
    )
    if err != nil { log.Fatalf("twelvedata client: %v", err) }

    src := twelvedataadapter.New(twelvedataadapter.Config{
        Interval: cfg.TwelveData.Interval,
        MaxBars:  cfg.TwelveData.MaxBars,
    }, td)
    tr := tracker.New(tracker.Config{WindowDays: cfg.TwelveData.WindowDays}, src)

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
    defer cancel()

    res, err := tr.Lookup(ctx, symbol)
    if err != nil { log.Fatalf("lookup %s: %v", symbol, err) }

    b, _ := json.MarshalIndent(res, "", "  ")
    fmt.Println(string(b))
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }

// effectiveTimeout prefers an explicitly passed flag value over the
// configured one. The flag defaults to 0, meaning "not set".
func effectiveTimeout(flagTimeout, cfgTimeout int) int {
    if flagTimeout > 0 { return flagTimeout }
    return cfgTimeout
}
