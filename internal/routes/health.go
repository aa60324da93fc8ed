package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/okarvi/greeter-api/internal/middleware"
)

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}
