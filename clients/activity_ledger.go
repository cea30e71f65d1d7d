package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"verifika-project/microservices/assignments-service/models"

	"github.com/sony/gobreaker"
)

// HTTPActivityLedger reads per-assignment activity statistics from the
// activities service.
type HTTPActivityLedger struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewHTTPActivityLedger(baseURL string, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *HTTPActivityLedger {
	return &HTTPActivityLedger{
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
	}
}

// StatsFor returns the ledger's counts for one assignment. An assignment the
// ledger has never seen yields zero counts, not an error.
func (l *HTTPActivityLedger) StatsFor(ctx context.Context, assignmentID string) (models.ActivityStats, error) {
	result, err := l.breaker.Execute(func() (interface{}, error) {
		url := fmt.Sprintf("%s/api/activities/stats/%s", l.baseURL, assignmentID)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := l.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return models.ActivityStats{}, nil
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("activities service returned %s", resp.Status)
		}

		var stats models.ActivityStats
		if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
			return nil, fmt.Errorf("failed to decode activity stats response: %v", err)
		}
		return stats, nil
	})
	if err != nil {
		return models.ActivityStats{}, &models.DependencyError{Dependency: "activity-ledger", Err: err}
	}
	return result.(models.ActivityStats), nil
}
