package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api"
)

// Status describes which optional collaborators the server was started with.
type Status struct {
	Environment  string
	Cache        bool
	AdvisorModel string
}

type healthResponse struct {
	Status        string `json:"status"`
	Environment   string `json:"environment,omitempty"`
	CacheEnabled  bool   `json:"cache_enabled"`
	AdvisorLoaded bool   `json:"advisor_loaded"`
	AdvisorModel  string `json:"advisor_model,omitempty"`
}

// HealthModule mounts GET /healthz.
func HealthModule(status Status) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/healthz", func(*gin.Context) (any, *api.APIError) {
			return healthResponse{
				Status:        "ok",
				Environment:   status.Environment,
				CacheEnabled:  status.Cache,
				AdvisorLoaded: status.AdvisorModel != "",
				AdvisorModel:  status.AdvisorModel,
			}, nil
		})
	})
}
