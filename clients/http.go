package clients

import (
	"net/http"
	"time"

	"verifika-project/microservices/assignments-service/logging"

	"github.com/sony/gobreaker"
)

// NewHTTPClient returns the http.Client shared by the directory adapters.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}

// NewBreaker builds a circuit breaker with the settings used for
// cross-service calls: half-open admits a single probe, and more than three
// consecutive failures trip it.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}
