package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackHomeKey           = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the not-found or server-error body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section id="app-error-state" class="error-state"><h1>`)
		h.text(appErrorHeading(statusCode, loc))
		h.raw("</h1><p>")
		h.text(appErrorMessage(statusCode, loc))
		h.raw(`</p><a class="button button-primary" hx-target="#main" hx-push-url="true"`)
		h.url("href", routepath.Root)
		h.url("hx-get", routepath.Root)
		h.raw(">")
		h.text(T(loc, appErrorBackHomeKey))
		h.raw("</a></section>")
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
