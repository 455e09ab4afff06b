package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// QuoteValue is the raw current-quote snapshot. Numeric fields arrive as
// strings on the wire.
type QuoteValue struct {
	Symbol        string `json:"symbol"`
	Close         string `json:"close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
}

type quoteResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	QuoteValue
}

// Quote retrieves the current quote for symbol.
func (c *TwelveDataAPIClient) Quote(ctx context.Context, symbol string, opts ...TwelveDataAPIClientOption) (*QuoteValue, error) {
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

	url := fmt.Sprintf("%s/quote?%s", override.baseURL, query.Encode())
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

	var body quoteResponse
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}
	if body.Status == "error" {
		return nil, &APIError{Code: body.Code, Message: body.Message}
	}
	return &body.QuoteValue, nil
}
