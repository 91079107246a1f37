// Package message serves the fixed vmlx message on POST /.
package message

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/vmlx-responder/internal/platform/logging"
)

// Register wires the message route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-message",
		Method:      http.MethodPost,
		Path:        "/",
		Summary:     "Return the vmlx message",
		Description: "Any request body is ignored. The response is always the same vmlx/data text.",
		Tags:        []string{"Message"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "The message text",
				Content: map[string]*huma.MediaType{
					"vmlx/data": {Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{DefaultText}}},
				},
			},
		},
	}, createHandler)
}

func createHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	msg := Message{Text: DefaultText}
	applog.LogInfo(ctx, "message responded", zap.String("path", "/"), zap.Int("bytes", len(msg.Text)))
	return msg.Output(), nil
}
