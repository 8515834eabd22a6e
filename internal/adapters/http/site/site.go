// Package site serves the landing page at the root path.
package site

import (
	"context"
	"net/http"
)

// Register attaches the landing page to mux. The root pattern also
// catches every path no other route claimed, which gets a plain 404
// instead of the page.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/", handleRoot)
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>rinkrank</title>
    <style>
      body{font-family:sans-serif;margin:4em auto;max-width:40em;line-height:1.6}
      code{background:#f0f0f0;padding:0 .3em}
    </style>
  </head>
  <body>
    <h1>rinkrank</h1>
    <p>Historical national-team rankings computed from the curated
    tournament catalog.</p>
    <ul>
      <li><a href="/api-docs">API reference</a></li>
      <li><a href="/api/rankings?year=1936">Rankings</a> (<code>/api/rankings?year={year}&amp;limit={n}</code>)</li>
      <li><a href="/api/years">Evaluated years</a></li>
      <li><a href="/api/teams">Team registry</a></li>
      <li><a href="/healthz">Health and metrics</a></li>
    </ul>
  </body>
</html>`
