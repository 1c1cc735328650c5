package forvo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const clientTimeout = 30 * time.Second

// Pronunciation is one entry of the lookup response. Only ID and PathMP3 are
// consumed by the download flow; the remaining fields are contributor
// metadata carried along for display.
type Pronunciation struct {
	ID       int64  `json:"id"`
	Word     string `json:"word"`
	Username string `json:"username"`
	Sex      string `json:"sex"`
	Country  string `json:"country"`
	LangName string `json:"langname"`
	Rate     int    `json:"rate"`
	NumVotes int    `json:"num_votes"`
	PathMP3  string `json:"pathmp3"`
	PathOGG  string `json:"pathogg"`
}

// Envelope is the decoded lookup response: an ordered item list plus the
// service's optional error indication.
type Envelope struct {
	Attributes struct {
		Total int `json:"total"`
	} `json:"attributes"`
	Items []Pronunciation `json:"items"`
	Error string          `json:"error"`
}

// Client performs the two network reads against the lookup service. Both
// operations are single-attempt; a failure is terminal for the invocation.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a lookup service client with a default request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// Lookup performs a GET against the constructed lookup URL and decodes the
// JSON envelope. A body that signals an error becomes a *LookupError
// carrying the service's message; a network failure or non-success status
// becomes a *TransportError.
func (c *Client) Lookup(ctx context.Context, lookupURL string) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "lookup", URL: lookupURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: "lookup", URL: lookupURL, StatusCode: resp.StatusCode}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Error != "" {
		return nil, &LookupError{Message: env.Error}
	}

	return &env, nil
}

// FetchAudio performs a plain GET against a media URL taken from a result
// item and returns the raw response body.
func (c *Client) FetchAudio(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "fetch audio", URL: mediaURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: "fetch audio", URL: mediaURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "fetch audio", URL: mediaURL, Err: err}
	}

	return data, nil
}
