// Package message provides the vmlx message as an HTTP Cloud Function.
package message

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// These match the main service's POST / response.
const (
	ContentType = "vmlx/data; charset=utf-8"
	Text        = "Hello from MyResponse!"
)

func init() {
	functions.HTTP("Message", messageHandler)
}

// messageHandler answers POST with the fixed message and rejects every other
// method. The request body is never read.
func messageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Text))
}
