// Package web serves the listings browsing site: the home rail, search with
// filters, listing detail, investment summaries and the market trends
// dashboard.
//
// Pages are server rendered. Navigation inside the site uses HTMX so most
// requests only swap the main content region.
package web
