// Package stonehm generates OpenAPI 3.0 documents from documented Go
// handler functions.
//
// stonehm is a documentation-to-specification compiler: it reads structured
// doc comments attached to handler functions, infers request and response
// types from their signatures, and assembles a complete, queryable OpenAPI
// document with deduplicated component schemas.
//
// # Overview
//
// The module consists of six packages:
//
//   - docparse: parse handler doc comments into structured documentation
//   - signature: infer request, response and error types from signatures
//   - registry: the name-keyed handler and type tables
//   - builder: aggregate routes into the OpenAPI document and serve it
//   - extract: the static-analysis front end for annotated Go source
//   - spec: the OpenAPI 3.0 document model
//
// # Quick Start
//
// Annotate a handler with a doc comment and the stonehm:handler directive:
//
//	// Get user by ID
//	//
//	// # Parameters
//	// - id (path): The user ID
//	//
//	// # Responses
//	// - 200: The requested user
//	// - 404: User not found
//	//
//	//stonehm:handler users
//	func GetUser(id Path[uint32]) stonehm.Result[stonehm.Json[UserResponse], ApiError] {
//		...
//	}
//
// Extract documentation and build the document:
//
//	handlers := registry.New()
//	types := registry.NewTypeRegistry()
//	if err := extract.Run(extract.Config{Dir: "."}, handlers, types); err != nil {
//		log.Fatal(err)
//	}
//
//	api := builder.New("My API", "1.0.0",
//		builder.WithHandlers(handlers),
//		builder.WithTypes(types),
//	)
//	api.Get("/users/:id", "GetUser")
//
//	doc, err := api.MarshalJSON()
//
// Serve the document over HTTP:
//
//	mux := http.NewServeMux()
//	api.InstallRoutes(mux) // GET /openapi.json and GET /openapi.yaml
//
// # Command-Line Interface
//
// The cmd/stonehm command wraps extraction and assembly for build
// pipelines:
//
//	stonehm -dir ./internal/api -routes routes.txt -title "My API" -out openapi.yaml
//
// Install the CLI:
//
//	go install github.com/melito/stonehm/cmd/stonehm@latest
//
// # Failure Model
//
// Document assembly never hard-fails: malformed doc lines are dropped,
// unknown handlers produce minimal operations, and unresolvable type
// references fall back to empty object schemas, so the emitted document is
// always structurally valid. The only registration-time errors are host
// contract violations such as duplicate handler names or out-of-range
// status codes.
package stonehm
