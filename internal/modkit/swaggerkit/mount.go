// Package swaggerkit serves the generated OpenAPI document and a swagger ui for it
package swaggerkit

import (
	"net/http"

	phttp "internhub/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the ui lives, the document sits at DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount registers the ui and document routes, nothing when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
