package handlers

import (
	"fmt"
	"net/http"
)

// Root returns the fixed liveness payload the NestJS side polls.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, map[string]string{"Hello": "World"}, http.StatusOK)
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		fmt.Fprintf(w, "Im alive!")
	} else {
		fmt.Fprintf(w, "Method not available: %s", r.Method)
	}
}
