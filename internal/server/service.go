package server

import (
	"fmt"
	"net/http"

	"github.com/northflank-guides/go-with-postgres/internal/database"
)

// defaultName is used when the request carries no name parameter.
const defaultName = "john"

type VisitorService struct {
	DBManager database.DBManager
}

func NewVisitorService(dbManager database.DBManager) *VisitorService {
	return &VisitorService{DBManager: dbManager}
}

// ListVisitors serves the root path. The mux routes every otherwise
// unregistered path here too, so anything but "/" is answered with a 404.
func (h *VisitorService) ListVisitors(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route found for %s", r.URL.Path))
		return
	}

	visitors, err := h.DBManager.GetAllVisitors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeVisitors(w, visitors)
}

func (h *VisitorService) ReadVisitors(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	visitors, err := h.DBManager.GetVisitorsByName(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeVisitors(w, visitors)
}

func (h *VisitorService) AddVisitor(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	if err := h.DBManager.InsertVisitor(r.Context(), name); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeConfirmation(w, fmt.Sprintf("Added %s to the visitors table", name))
}

func nameParam(r *http.Request) string {
	name := r.URL.Query().Get("name")
	if name == "" {
		return defaultName
	}
	return name
}
