package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/okarvi/greeter-api/internal/middleware"
)

// MethodData models the payload returned by the root routes. Field order
// is part of the contract: method first, then message.
type MethodData struct {
	Method  string `json:"method" doc:"HTTP method that was invoked" example:"GET"`
	Message string `json:"message" doc:"Greeting for the invoked method" example:"Hello from GET!"`
}

// RootOutput is the response wrapper for the root endpoints.
type RootOutput struct {
	Body MethodData
}

func registerRoot(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "read-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greet over GET",
	}, readHandler)

	// The source contract returns 200 for POST, not huma's usual 201.
	huma.Register(api, huma.Operation{
		OperationID:   "create-root",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Greet over POST",
		DefaultStatus: http.StatusOK,
	}, createHandler)
}

func readHandler(ctx context.Context, _ *struct{}) (*RootOutput, error) {
	appmiddleware.LogInfo(ctx, "root get", zap.String("path", "/"))
	return &RootOutput{Body: MethodData{
		Method:  http.MethodGet,
		Message: "Hello from GET!",
	}}, nil
}

func createHandler(ctx context.Context, _ *struct{}) (*RootOutput, error) {
	appmiddleware.LogInfo(ctx, "root post", zap.String("path", "/"))
	return &RootOutput{Body: MethodData{
		Method:  http.MethodPost,
		Message: "Hello from POST!",
	}}, nil
}
