// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// respondJSON encodes v and writes it with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshal json response failed", "error", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("write json response failed", "error", err)
	}
}

// respondError writes {"error": message}. The cause, when given, is logged
// and never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, cause error) {
	if cause != nil {
		slog.Error("api error",
			"path", r.URL.Path,
			"status", status,
			"message", message,
			"error", cause,
		)
	}
	respondJSON(w, status, errorBody{Error: message})
}
