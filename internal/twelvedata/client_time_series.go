package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"time"
)

// APIError is an explicit error status returned by the Twelve Data API
// (HTTP 200 with {"status":"error"} in the body).
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twelvedata api error (code %d): %s", e.Code, e.Message)
}

// TimeSeriesValue is one raw bar from the time_series endpoint. All fields
// arrive as strings on the wire.
type TimeSeriesValue struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume"`
}

type timeSeriesResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Values  []TimeSeriesValue `json:"values"`
}

// TimeSeries retrieves daily-interval price history for symbol over the
// inclusive [start, end] date window.
func (c *TwelveDataAPIClient) TimeSeries(ctx context.Context, symbol, interval string, start, end time.Time, opts ...TwelveDataAPIClientOption) ([]TimeSeriesValue, error) {
	var override = &TwelveDataAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	query.Add("symbol", symbol)
	query.Add("interval", interval)
	query.Add("start_date", start.Format("2006-01-02"))
	query.Add("end_date", end.Format("2006-01-02"))
	query.Add("format", "JSON")

	url := fmt.Sprintf("%s/time_series?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body timeSeriesResponse
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding time series response: %w", err)
	}
	if body.Status == "error" {
		return nil, &APIError{Code: body.Code, Message: body.Message}
	}
	return body.Values, nil
}
