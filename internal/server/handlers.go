package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
)

// Failure messages shown to the portal user, carried over from the original
// data endpoint.
const (
	msgUsersUnavailable    = "Не удалось загрузить данные о пользователях"
	msgProductsUnavailable = "Не удалось загрузить данные о продуктах"
)

// errorBody mirrors the error shape the original endpoint produced.
type errorBody struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	s.serveDataFile(w, r, "users.json", msgUsersUnavailable)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	s.serveDataFile(w, r, "products.json", msgProductsUnavailable)
}

// serveDataFile forwards the named static resource. Any read failure
// collapses to a 500 with a generic localized message; the detail only
// goes to the log.
func (s *Server) serveDataFile(w http.ResponseWriter, r *http.Request, name, failMsg string) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		s.log.Error(r.Context(), "data file not readable", "file", name, "error", err)
		s.writeError(w, http.StatusInternalServerError, failMsg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{StatusCode: code, StatusMessage: msg})
}
