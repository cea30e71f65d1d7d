package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"verifika-project/microservices/assignments-service/models"

	"github.com/sony/gobreaker"
)

// HTTPTechnicianDirectory resolves technicians from the technicians service.
type HTTPTechnicianDirectory struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewHTTPTechnicianDirectory(baseURL string, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *HTTPTechnicianDirectory {
	return &HTTPTechnicianDirectory{
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

type technicianLookup struct {
	technician *models.Technician
	found      bool
}

func (d *HTTPTechnicianDirectory) GetTechnician(ctx context.Context, id string) (*models.Technician, bool, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		url := fmt.Sprintf("%s/api/technicians/%s", d.baseURL, id)
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
			return technicianLookup{}, nil
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("technicians service returned %s", resp.Status)
		}

		var technician models.Technician
		if err := json.NewDecoder(resp.Body).Decode(&technician); err != nil {
			return nil, fmt.Errorf("failed to decode technician response: %v", err)
		}
		return technicianLookup{technician: &technician, found: true}, nil
	})
	if err != nil {
		return nil, false, &models.DependencyError{Dependency: "technician-directory", Err: err}
	}

	lookup := result.(technicianLookup)
	return lookup.technician, lookup.found, nil
}
