package builder

import (
	"log"
	"net/http"
	"strings"
)

// NormalizePrefix canonicalizes a serving prefix: exactly one leading
// slash, no trailing slashes. An empty prefix stays empty, which produces
// the bare paths .json and .yaml.
func NormalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// InstallRoutes registers the document-serving endpoints on mux under the
// default /openapi prefix, so the document is available at /openapi.json
// and /openapi.yaml.
func (b *Builder) InstallRoutes(mux *http.ServeMux) {
	b.InstallRoutesPrefix(mux, "/openapi")
}

// InstallRoutesPrefix registers GET {prefix}.json and GET {prefix}.yaml on
// mux. The prefix is normalized first. Each request serializes a fresh
// snapshot, so documents served early reflect later registrations.
func (b *Builder) InstallRoutesPrefix(mux *http.ServeMux, prefix string) {
	prefix = NormalizePrefix(prefix)
	mux.HandleFunc("GET "+prefix+".json", b.serveJSON)
	mux.HandleFunc("GET "+prefix+".yaml", b.serveYAML)
}

func (b *Builder) serveJSON(w http.ResponseWriter, r *http.Request) {
	data, err := b.MarshalJSON()
	if err != nil {
		http.Error(w, "failed to serialize document", http.StatusInternalServerError)
		log.Printf("stonehm: serve json: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (b *Builder) serveYAML(w http.ResponseWriter, r *http.Request) {
	data, err := b.MarshalYAML()
	if err != nil {
		http.Error(w, "failed to serialize document", http.StatusInternalServerError)
		log.Printf("stonehm: serve yaml: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(data)
}
