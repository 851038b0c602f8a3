package core

import "net/http"

// healthResponse is the JSON response body for the health check endpoint.
type healthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

// HandleHealth reports liveness. The service holds no stateful dependencies;
// upstream reachability is intentionally not probed here because both
// upstreams are rate-limited third parties and a liveness endpoint must stay
// cheap. This endpoint is public and mounted at GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, healthResponse{
		Status:      "healthy",
		Service:     s.Config.Service,
		Environment: s.Config.Environment,
	})
}
