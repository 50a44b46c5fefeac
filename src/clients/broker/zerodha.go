package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ZerodhaClient talks to the Kite Connect REST API. Only the read endpoints
// the sync workflows need are implemented.
type ZerodhaClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewZerodhaClient(baseURL string) *ZerodhaClient {
	return &ZerodhaClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ZerodhaClient) Name() string {
	return "zerodha"
}

func (c *ZerodhaClient) GetHoldings(ctx context.Context, creds Credentials) ([]Holding, error) {
	var payload struct {
		Data []Holding `json:"data"`
	}
	if err := c.get(ctx, "/portfolio/holdings", creds, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *ZerodhaClient) GetTrades(ctx context.Context, creds Credentials) ([]Trade, error) {
	var payload struct {
		Data []Trade `json:"data"`
	}
	if err := c.get(ctx, "/trades", creds, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *ZerodhaClient) get(ctx context.Context, endpoint string, creds Credentials, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Kite-Version", "3")
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", creds.APIKey, creds.AccessToken))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("broker request %s failed with status %d", endpoint, resp.StatusCode)
	}
	return json.Unmarshal(body, out)
}
