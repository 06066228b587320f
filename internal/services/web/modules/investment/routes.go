package investment

import (
	"net/http"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.InvestmentPattern, h.handleSummary)
	mux.HandleFunc(http.MethodGet+" "+strings.TrimSuffix(routepath.InvestmentPrefix, "/"), h.handleNotFound)
	mux.HandleFunc(http.MethodGet+" "+routepath.InvestmentPrefix+"{rest...}", h.handleNotFound)
}
