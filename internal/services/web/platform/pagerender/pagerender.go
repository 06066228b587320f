// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/dwelling.space/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/dwelling.space/internal/services/web/templates"
)

// RequestResolver resolves language state from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// FragmentFunc builds a page body once the request localizer is known.
type FragmentFunc func(loc webi18n.Localizer) ModulePage

// WriteModulePage writes a module page as a full document, or as the main
// element swap when the request comes from HTMX.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	return WriteLocalizedPage(w, r, resolver, func(webi18n.Localizer) ModulePage { return page })
}

// WriteLocalizedPage resolves the request localizer, builds the page with
// it and writes the result.
func WriteLocalizedPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, build FragmentFunc) error {
	if w == nil {
		return nil
	}
	var resolveLanguage func(*http.Request) string
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	page := build(loc)

	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	opts := webtemplates.LayoutOptions{Title: page.Title, Lang: lang, Loc: loc}
	if r != nil && r.URL != nil {
		opts.CurrentPath = r.URL.Path
		opts.CurrentQuery = r.URL.RawQuery
	}
	shell := webtemplates.Layout(opts)
	if httpx.IsHTMXRequest(r) {
		shell = webtemplates.MainFragment(opts)
	}

	var buf bytes.Buffer
	if err := shell.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
