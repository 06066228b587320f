package markettrends

import (
	"net/http"

	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.MarketTrends, h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.MarketTrendsPrefix+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.MarketTrendsPrefix+"{rest...}", h.handleNotFound)
}
