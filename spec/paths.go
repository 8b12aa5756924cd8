package spec

// Paths maps a path template, with parameters in {name} form, to the
// operations available on it.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
type PathItem struct {
	Get    *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put    *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post   *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Patch  *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   Responses    `yaml:"responses" json:"responses"`
}

// Responses maps status codes, as strings, to their response definitions.
type Responses map[string]*Response

// Response describes a single response from an operation.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType provides the schema and examples for a media type.
type MediaType struct {
	Schema   *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Example holds a single named example value.
type Example struct {
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Value   any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Operation returns the operation registered for the given HTTP method,
// or nil when none is set. Method must be upper case.
func (pi *PathItem) Operation(method string) *Operation {
	switch method {
	case "GET":
		return pi.Get
	case "PUT":
		return pi.Put
	case "POST":
		return pi.Post
	case "DELETE":
		return pi.Delete
	case "PATCH":
		return pi.Patch
	}
	return nil
}

// SetOperation stores op under the given upper case HTTP method. Unknown
// methods are ignored.
func (pi *PathItem) SetOperation(method string, op *Operation) {
	switch method {
	case "GET":
		pi.Get = op
	case "PUT":
		pi.Put = op
	case "POST":
		pi.Post = op
	case "DELETE":
		pi.Delete = op
	case "PATCH":
		pi.Patch = op
	}
}
