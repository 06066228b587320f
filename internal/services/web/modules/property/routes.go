package property

import (
	"net/http"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PropertyPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+strings.TrimSuffix(routepath.PropertyPrefix, "/"), h.handleNotFound)
	mux.HandleFunc(http.MethodGet+" "+routepath.PropertyPrefix+"{rest...}", h.handleNotFound)
}
