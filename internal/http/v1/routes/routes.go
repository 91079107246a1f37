package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/vmlx-responder/internal/http/v1/message"
)

// Register wires all huma operations into the provided API.
func Register(api huma.API) {
	message.Register(api)
}
