package controller

import "net/http"

type Health struct{}

func (Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, "no-store", map[string]string{"status": "ok"})
}
