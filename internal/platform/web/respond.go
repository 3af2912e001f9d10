// Package web contiene helpers HTTP mínimos compartidos por los handlers.
// Antes cada módulo duplicaba su writeJSON; con seis módulos ya conviene
// tenerlo en un solo lugar.
package web

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}
