package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"

    "gopkg.in/yaml.v3"
)

type Server struct {
    Port              string `json:"port" yaml:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec" yaml:"request_timeout_sec"`
    StaticDir         string `json:"static_dir" yaml:"static_dir"`
}

type TwelveData struct {
    APIKey     string `json:"api_key" yaml:"api_key"`
    BaseURL    string `json:"base_url" yaml:"base_url"`
    Interval   string `json:"interval" yaml:"interval"`
    WindowDays int    `json:"window_days" yaml:"window_days"`
    MaxBars    int    `json:"max_bars" yaml:"max_bars"`
    // Demo is set during Load when no API key is configured and the
    // literal "demo" credential is substituted. Degraded mode, not an error.
    Demo bool `json:"-" yaml:"-"`
}

type Config struct {
    Server     Server     `json:"server" yaml:"server"`
    TwelveData TwelveData `json:"twelvedata" yaml:"twelvedata"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 10, StaticDir: "static"},
        TwelveData: TwelveData{
            BaseURL:    "https://api.twelvedata.com",
            Interval:   "1day",
            WindowDays: 10,
            MaxBars:    7,
        },
    }
}

// Load reads config from path. If path is empty or the file does not exist,
// it returns defaults. Files ending in .yaml/.yml are parsed as YAML,
// everything else as JSON. Environment variables override select fields for
// secrecy, and a missing API key resolves to the "demo" credential.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        } else if _, err := os.Stat("config.yaml"); err == nil {
            path = "config.yaml"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := unmarshal(path, b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    if cfg.TwelveData.APIKey == "" {
        cfg.TwelveData.APIKey = "demo"
        cfg.TwelveData.Demo = true
    }
    return cfg, nil
}

func unmarshal(path string, b []byte, cfg *Config) error {
    lower := strings.ToLower(path)
    if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
        return yaml.Unmarshal(b, cfg)
    }
    return json.Unmarshal(b, cfg)
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("STATIC_DIR"); v != "" { cfg.Server.StaticDir = v }
    if v := os.Getenv("TWELVE_DATA_API_KEY"); v != "" { cfg.TwelveData.APIKey = v }
    if v := os.Getenv("TWELVE_DATA_BASE_URL"); v != "" { cfg.TwelveData.BaseURL = v }
    if v := os.Getenv("WINDOW_DAYS"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.TwelveData.WindowDays = x }
    }
    if v := os.Getenv("MAX_BARS"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.TwelveData.MaxBars = x }
    }
}
