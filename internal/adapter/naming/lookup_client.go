package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	"github.com/rs/zerolog"
)

const defaultLookupTimeout = 5 * time.Second

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// LookupClient implements ports.NameLookup against a name-resolution HTTP
// service. An unregistered name is a normal outcome, not an error.
type LookupClient struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewLookupClient creates a name lookup client.
func NewLookupClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *LookupClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultLookupTimeout}
	}
	return &LookupClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type lookupResponse struct {
	Address string `json:"address"`
}

// Lookup resolves a name on the given network. Returns an empty address with
// nil error when the name is not registered.
func (c *LookupClient) Lookup(ctx context.Context, name string, network domain.Network) (domain.Address, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("network", string(network))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/resolve?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("name service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("name service returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read lookup response: %w", err)
	}

	var body lookupResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("decode lookup response: %w", err)
	}
	if body.Address == "" {
		return "", nil
	}
	if !domain.IsHexAddress(body.Address) {
		c.log.Warn().Str("name", name).Str("address", body.Address).Msg("name service returned malformed address")
		return "", fmt.Errorf("name service returned malformed address for %q", name)
	}
	return domain.NormalizeAddress(body.Address), nil
}
