// Command stonehm generates an OpenAPI 3.0 document from annotated Go
// source. It scans the target packages for //stonehm:handler functions and
// //stonehm:schema types, applies a route table mapping methods and path
// templates to handler names, and writes the document as JSON or YAML
// depending on the output file extension.
//
// The route table is a plain text file with one route per line:
//
//	GET    /users/:id   GetUser
//	POST   /users       CreateUser
//
// Blank lines and lines starting with # are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/melito/stonehm/builder"
	"github.com/melito/stonehm/extract"
	"github.com/melito/stonehm/registry"
)

func main() {
	dir := flag.String("dir", ".", "directory to parse packages from")
	pattern := flag.String("pattern", "./...", "package pattern to load")
	title := flag.String("title", "API", "API title for the document info block")
	version := flag.String("version", "0.1.0", "API version for the document info block")
	description := flag.String("description", "", "optional API description")
	routesPath := flag.String("routes", "", "path to the route table file (required)")
	out := flag.String("out", "openapi.json", "output file; .yaml or .yml selects YAML")
	flag.Parse()

	if *routesPath == "" {
		flag.Usage()
		log.Fatal("missing required -routes flag")
	}

	routes, err := readRoutes(*routesPath)
	if err != nil {
		log.Fatal(err)
	}

	handlers := registry.New()
	types := registry.NewTypeRegistry()
	cfg := extract.Config{Dir: *dir, Patterns: []string{*pattern}}
	if err := extract.Run(cfg, handlers, types); err != nil {
		log.Fatal(err)
	}

	opts := []builder.Option{builder.WithHandlers(handlers), builder.WithTypes(types)}
	if *description != "" {
		opts = append(opts, builder.WithDescription(*description))
	}
	b := builder.New(*title, *version, opts...)
	for _, r := range routes {
		b.Route(r.method, r.path, r.handler)
	}

	if err := b.WriteFile(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d routes, %d handlers)", *out, len(routes), handlers.Len())
}

type route struct {
	method  string
	path    string
	handler string
}

func readRoutes(path string) ([]route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open route table: %w", err)
	}
	defer f.Close()

	var routes []route
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("route table %s:%d: want \"METHOD PATH HANDLER\", got %q", path, lineno, line)
		}
		routes = append(routes, route{method: fields[0], path: fields[1], handler: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}
	return routes, nil
}
