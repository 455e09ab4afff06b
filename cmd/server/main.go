package main

import (
    "compress/gzip"
    "context"
    "encoding/json"
    "io"
    "log"
    "net/http"
    "os"
    "os/signal"
    "path/filepath"
    "strings"
    "sync"
    "syscall"
    "time"

    "stocktracker/internal/config"
    "stocktracker/internal/httpx"
    "stocktracker/internal/market"
    "stocktracker/internal/market/twelvedataadapter"
    "stocktracker/internal/tracker"
    "stocktracker/internal/twelvedata"
)

type historyResponse struct {
    Symbol    string             `json:"symbol"`
    Series    market.PriceSeries `json:"series"`
    Quote     *market.Quote      `json:"quote,omitempty"`
    Summary   tracker.Summary    `json:"summary"`
    Formatted tracker.Formatted  `json:"formatted"`
    Demo      bool               `json:"demo,omitempty"`
}

type errorResponse struct {
    Error string `json:"error"`
    Kind  string `json:"kind"`
}

func main() {
    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if cfg.TwelveData.Demo {
        log.Println("warning: TWELVE_DATA_API_KEY not set; using the \"demo\" credential")
    }
    timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second

    httpClient := httpx.New(timeout)

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

    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    mux.Handle("/api/history", withJSONHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodGet {
            http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
            return
        }
        handleGetHistory(w, r, tr, cfg.TwelveData.Demo, timeout)
    })))

    // dashboard: index page plus chart script/styles from the static dir
    fs := http.FileServer(http.Dir(cfg.Server.StaticDir))
    mux.Handle("/static/", http.StripPrefix("/static/", fs))
    mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path == "/" {
            http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, "index.html"))
            return
        }
        http.NotFound(w, r)
    })

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withGzip(recoverPanic(mux)),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Printf("server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

func handleGetHistory(w http.ResponseWriter, r *http.Request, tr *tracker.Tracker, demo bool, timeout time.Duration) {
    symbol := r.URL.Query().Get("symbol")
    if strings.TrimSpace(symbol) == "" {
        writeError(w, market.NewValidationError("", "missing symbol query param"))
        return
    }
    ctx, cancel := context.WithTimeout(r.Context(), timeout)
    defer cancel()
    writeHistory(w, ctx, tr, symbol, demo)
}

func writeHistory(w http.ResponseWriter, ctx context.Context, tr *tracker.Tracker, symbol string, demo bool) {
    res, err := tr.Lookup(ctx, symbol)
    if err != nil {
        writeError(w, err)
        return
    }
    resp := historyResponse{
        Symbol:    res.Symbol,
        Series:    res.Series,
        Quote:     res.Quote,
        Summary:   res.Summary,
        Formatted: res.Summary.Format(),
        Demo:      demo,
    }
    w.Header().Set("Content-Type", "application/json; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(resp)
}

func writeError(w http.ResponseWriter, err error) {
    kind := market.KindOf(err)
    w.Header().Set("Content-Type", "application/json; charset=utf-8")
    w.WriteHeader(statusFor(kind))
    _ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Kind: kind.String()})
}

func statusFor(kind market.Kind) int {
    switch kind {
    case market.KindValidation:
        return http.StatusBadRequest
    case market.KindNoData:
        return http.StatusNotFound
    case market.KindAPI, market.KindParse:
        return http.StatusBadGateway
    case market.KindNetwork:
        return http.StatusGatewayTimeout
    }
    return http.StatusInternalServerError
}

func withJSONHeaders(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        // Basic CORS for browser usage; adjust as needed.
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}

// withGzip compresses response when client supports gzip.
func withGzip(next http.Handler) http.Handler {
    var gzPool = sync.Pool{New: func() any {
        w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
        return w
    }}
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }
        gz := gzPool.Get().(*gzip.Writer)
        gz.Reset(w)
        defer func() {
            _ = gz.Close()
            gz.Reset(io.Discard)
            gzPool.Put(gz)
        }()
        w.Header().Set("Content-Encoding", "gzip")
        w.Header().Add("Vary", "Accept-Encoding")
        gw := gzipResponseWriter{ResponseWriter: w, Writer: gz}
        next.ServeHTTP(gw, r)
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    Writer io.Writer
}

func (g gzipResponseWriter) Write(b []byte) (int, error) {
    return g.Writer.Write(b)
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        defer func() {
            if rec := recover(); rec != nil {
                http.Error(w, "internal server error", http.StatusInternalServerError)
            }
        }()
        next.ServeHTTP(w, r)
    })
}
