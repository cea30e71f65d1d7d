package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"verifika-project/microservices/assignments-service/models"

	"github.com/sony/gobreaker"
)

// HTTPClientDirectory resolves clients from the clients service.
type HTTPClientDirectory struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewHTTPClientDirectory(baseURL string, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *HTTPClientDirectory {
	return &HTTPClientDirectory{
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

type clientLookup struct {
	client *models.Client
	found  bool
}

func (d *HTTPClientDirectory) GetClient(ctx context.Context, id string) (*models.Client, bool, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		url := fmt.Sprintf("%s/api/clients/%s", d.baseURL, id)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := d.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return clientLookup{}, nil
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("clients service returned %s", resp.Status)
		}

		var client models.Client
		if err := json.NewDecoder(resp.Body).Decode(&client); err != nil {
			return nil, fmt.Errorf("failed to decode client response: %v", err)
		}
		return clientLookup{client: &client, found: true}, nil
	})
	if err != nil {
		return nil, false, &models.DependencyError{Dependency: "client-directory", Err: err}
	}

	lookup := result.(clientLookup)
	return lookup.client, lookup.found, nil
}
