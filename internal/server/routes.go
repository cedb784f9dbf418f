package server

import (
	"net/http"
)

func SetupRoutes(visitorService *VisitorService) http.Handler {
	mux := http.NewServeMux()

	// The root pattern also catches unknown paths; ListVisitors answers 404
	// for anything that is not exactly "/".
	mux.HandleFunc("/", visitorService.ListVisitors)
	mux.HandleFunc("/read", visitorService.ReadVisitors)
	mux.HandleFunc("/add", visitorService.AddVisitor)

	return withRequestLogging(mux)
}
