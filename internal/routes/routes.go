package routes

import (
	"github.com/danielgtaylor/huma/v2"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	registerRoot(api)
	registerHealth(api)
}
