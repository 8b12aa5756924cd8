package spec

import (
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// Version is the OpenAPI specification version emitted in every Document.
const Version = "3.0.0"

// Document is the root OpenAPI object.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       Info        `yaml:"info" json:"info"`
	Paths      Paths       `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Components holds reusable objects referenced from operations.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// JSON returns the document as pretty-printed JSON bytes.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML returns the document as YAML bytes.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
