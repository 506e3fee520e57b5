package handlers

import (
	"fmt"
	"net/http"
)

// Root handles GET /, the plain-text liveness endpoint.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Card Collection API funcionando correctamente")
}
