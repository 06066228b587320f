package search

import (
	"net/http"

	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Search, h.handleSearch)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{$}", h.handleSearch)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchLocations, h.handleLocations)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{rest...}", h.handleNotFound)
}
