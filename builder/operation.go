package builder

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/melito/stonehm/docparse"
	"github.com/melito/stonehm/registry"
	"github.com/melito/stonehm/spec"
)

// buildOperation synthesizes one operation from a route registration and
// the handler's resolved documentation. Nothing in here fails: missing
// documentation degrades to generated defaults.
func buildOperation(method, origPath, translated string, doc registry.HandlerDoc) *spec.Operation {
	op := &spec.Operation{
		OperationID: OperationID(method, origPath),
		Summary:     doc.Summary,
		Description: doc.Description,
		Tags:        doc.Tags,
	}
	if op.Summary == "" {
		op.Summary = method + " " + origPath
	}

	for _, p := range doc.Parameters {
		op.Parameters = append(op.Parameters, buildParameter(p))
	}

	if doc.RequestBody != nil {
		op.RequestBody = buildRequestBody(doc.RequestBody, doc.RequestBodyType)
	}

	op.Responses = buildResponses(method, translated, doc)
	return op
}

// buildParameter types a documented parameter by its location. Unrecognized
// locations default to query. Path parameters are always required and
// header parameters never are.
func buildParameter(p docparse.Parameter) *spec.Parameter {
	location := p.Location
	switch location {
	case spec.InPath, spec.InQuery, spec.InHeader:
	default:
		location = spec.InQuery
	}
	return &spec.Parameter{
		Name:        p.Name,
		In:          location,
		Description: p.Description,
		Required:    location == spec.InPath,
		Schema:      &spec.Schema{Type: "string"},
	}
}

func buildRequestBody(doc *docparse.RequestBody, bodyType string) *spec.RequestBody {
	schema := &spec.Schema{Type: "object"}
	if bodyType != "" {
		schema = spec.SchemaRef(bodyType)
	}
	return &spec.RequestBody{
		Description: doc.Description,
		Required:    true,
		Content: map[string]*spec.MediaType{
			doc.ContentType: {Schema: schema},
		},
	}
}

// buildResponses emits the documented responses, or a synthesized default
// set when none were documented. When the handler declares an error type
// and the author documented no >=400 response, a standard error set is
// backfilled: 404 only on parameterized paths and 401/403 never on GET.
func buildResponses(method, translated string, doc registry.HandlerDoc) spec.Responses {
	responses := make(spec.Responses)

	if len(doc.Responses) == 0 {
		success := &spec.Response{Description: "Successful response"}
		if doc.ResponseType != "" {
			success.Content = refContent(doc.ResponseType)
		}
		responses["200"] = success

		if doc.ErrorType != "" {
			responses["400"] = errorResponse("Bad Request", doc.ErrorType)
			responses["500"] = errorResponse("Internal Server Error", doc.ErrorType)
		}
		return responses
	}

	documentedError := false
	for _, rd := range doc.Responses {
		if rd.Status >= 400 {
			documentedError = true
		}
		responses[strconv.Itoa(rd.Status)] = buildDocumentedResponse(rd, doc.ResponseType)
	}

	if doc.ErrorType != "" && !documentedError {
		backfill := []struct {
			status int
			text   string
		}{
			{400, "Bad Request"},
			{401, "Unauthorized"},
			{403, "Forbidden"},
			{404, "Not Found"},
			{500, "Internal Server Error"},
		}
		for _, e := range backfill {
			if e.status == 404 && !strings.Contains(translated, "{") {
				continue
			}
			if (e.status == 401 || e.status == 403) && method == "GET" {
				continue
			}
			responses[strconv.Itoa(e.status)] = errorResponse(e.text, doc.ErrorType)
		}
	}
	return responses
}

func buildDocumentedResponse(rd docparse.Response, responseType string) *spec.Response {
	resp := &spec.Response{Description: rd.Description}

	if rd.Content != nil {
		var schema *spec.Schema
		switch {
		case rd.Content.Schema != "":
			schema = spec.SchemaRef(rd.Content.Schema)
		case rd.Status == 200 && responseType != "":
			schema = spec.SchemaRef(responseType)
		default:
			schema = &spec.Schema{Type: "object"}
		}

		mt := &spec.MediaType{Schema: schema}
		for _, ex := range rd.Examples {
			if mt.Examples == nil {
				mt.Examples = make(map[string]*spec.Example, len(rd.Examples))
			}
			mt.Examples[ex.Name] = &spec.Example{
				Summary: ex.Summary,
				Value:   sniffExampleValue(ex.Value),
			}
		}
		resp.Content = map[string]*spec.MediaType{rd.Content.MediaType: mt}
	} else if rd.Status == 200 && responseType != "" {
		resp.Content = refContent(responseType)
	}
	return resp
}

// sniffExampleValue parses values that look like JSON objects or arrays;
// anything else, parse failures included, stays a raw string.
func sniffExampleValue(raw string) any {
	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}
	return raw
}

func refContent(typeName string) map[string]*spec.MediaType {
	return map[string]*spec.MediaType{
		"application/json": {Schema: spec.SchemaRef(typeName)},
	}
}

func errorResponse(description, errType string) *spec.Response {
	return &spec.Response{
		Description: description,
		Content:     refContent(errType),
	}
}
