// Package docparse parses handler doc comments into structured API
// documentation. The grammar is line oriented: the first non-empty line is
// the summary, free text before any section header is the description, and
// the markdown headers "# Parameters", "# Request Body" and "# Responses"
// open sections with their own line formats.
package docparse

import (
	"strconv"
	"strings"
)

// Parameter is a documented operation parameter, from a line of the form
// "- name (location): description".
type Parameter struct {
	Name        string
	Description string
	Location    string
}

// RequestBody is a documented request body. The description is the
// space-joined text following the Content-Type line.
type RequestBody struct {
	Description string
	ContentType string
}

// Content is the media type and optional schema name of an elaborate
// response.
type Content struct {
	MediaType string
	Schema    string
}

// Example is a named example value attached to a response.
type Example struct {
	Name    string
	Summary string
	Value   string
}

// Response is a documented response. Content and Examples are only set by
// the elaborate format. A nil Examples slice means no examples block was
// opened; an empty non-nil slice means the block exists but has no entries.
type Response struct {
	Status      int
	Description string
	Content     *Content
	Examples    []Example
}

// Docs is the parsed documentation of a single handler.
type Docs struct {
	Summary     string
	Description string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
}

// elaborate response property lines recognized inside the responses section
var responseProps = []string{
	"description:",
	"content:",
	"application/json:",
	"application/xml:",
	"text/plain:",
	"schema:",
	"examples:",
	"- name:",
	"name:",
	"summary:",
	"value:",
}

// Parse parses raw doc comment lines into Docs. Lines are trimmed first
// and blank lines are discarded, so indentation carries no meaning.
// Malformed lines are skipped rather than reported: handlers with sloppy
// docs still produce a partial document.
func Parse(raw []string) Docs {
	var lines []string
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	var docs Docs
	if len(lines) == 0 {
		return docs
	}

	var descLines []string
	section := ""
	for i, line := range lines {
		if i == 0 {
			docs.Summary = line
			continue
		}

		switch {
		case strings.HasPrefix(line, "# Parameters") || strings.HasPrefix(line, "## Parameters"):
			section = "parameters"
			continue
		case strings.HasPrefix(line, "# Request Body") || strings.HasPrefix(line, "## Request Body"):
			section = "request_body"
			continue
		case strings.HasPrefix(line, "# Responses") || strings.HasPrefix(line, "## Responses"):
			section = "responses"
			continue
		case strings.HasPrefix(line, "#"):
			// any other header ends the current section
			section = ""
		}

		switch section {
		case "parameters":
			if p, ok := parseParameterLine(line); ok {
				docs.Parameters = append(docs.Parameters, p)
			}
		case "request_body":
			if ct, ok := strings.CutPrefix(line, "Content-Type:"); ok {
				docs.RequestBody = &RequestBody{ContentType: strings.TrimSpace(ct)}
			} else if docs.RequestBody != nil {
				if docs.RequestBody.Description != "" {
					docs.RequestBody.Description += " "
				}
				docs.RequestBody.Description += line
			}
		case "responses":
			parseResponseLine(&docs, line)
		default:
			if !strings.HasPrefix(line, "#") {
				descLines = append(descLines, line)
			}
		}
	}

	docs.Description = strings.Join(descLines, " ")
	return docs
}

// parseParameterLine parses "- name (location): description" bullet lines.
// Lines missing the parentheses or the colon are rejected.
func parseParameterLine(line string) (Parameter, bool) {
	if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
		return Parameter{}, false
	}
	text := strings.TrimSpace(line[2:])

	open := strings.Index(text, "(")
	if open < 0 {
		return Parameter{}, false
	}
	close := strings.Index(text[open:], ")")
	if close < 0 {
		return Parameter{}, false
	}
	close += open
	colon := strings.Index(text[close:], ":")
	if colon < 0 {
		return Parameter{}, false
	}
	return Parameter{
		Name:        strings.TrimSpace(text[:open]),
		Location:    strings.TrimSpace(text[open+1 : close]),
		Description: strings.TrimSpace(text[close+colon+1:]),
	}, true
}

// parseResponseLine handles one line of the responses section, either a
// "- code: description" bullet or an elaborate-format property line that
// amends the most recent response.
func parseResponseLine(docs *Docs, line string) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		text := strings.TrimSpace(line[2:])
		colon := strings.Index(text, ":")
		if colon < 0 {
			return
		}
		statusPart := strings.TrimSpace(text[:colon])
		desc := strings.TrimSpace(text[colon+1:])
		status, err := strconv.ParseUint(statusPart, 10, 16)
		if err != nil {
			// a bullet that is an example name, not a status line
			if strings.HasPrefix(line, "- name:") {
				amendResponse(docs, line)
			}
			return
		}
		docs.Responses = append(docs.Responses, Response{
			Status:      int(status),
			Description: desc,
		})
		return
	}
	amendResponse(docs, line)
}

func amendResponse(docs *Docs, line string) {
	if len(docs.Responses) == 0 || !isResponseProp(line) {
		return
	}
	resp := &docs.Responses[len(docs.Responses)-1]

	switch {
	case strings.HasPrefix(line, "description:"):
		resp.Description = unquote(strings.TrimPrefix(line, "description:"))
	case strings.HasPrefix(line, "content:"):
		if resp.Content == nil {
			resp.Content = &Content{MediaType: "application/json"}
		}
	case strings.HasPrefix(line, "application/json:"),
		strings.HasPrefix(line, "application/xml:"),
		strings.HasPrefix(line, "text/plain:"):
		mt, _, _ := strings.Cut(line, ":")
		if resp.Content == nil {
			resp.Content = &Content{MediaType: mt}
		} else {
			resp.Content.MediaType = mt
		}
	case strings.HasPrefix(line, "schema:"):
		name := strings.TrimSpace(strings.TrimPrefix(line, "schema:"))
		if resp.Content == nil {
			resp.Content = &Content{MediaType: "application/json", Schema: name}
		} else {
			resp.Content.Schema = name
		}
	case strings.HasPrefix(line, "examples:"):
		if resp.Examples == nil {
			resp.Examples = []Example{}
		}
	case strings.HasPrefix(line, "- name:"), strings.HasPrefix(line, "name:"):
		name := strings.TrimPrefix(line, "- name:")
		name = strings.TrimPrefix(name, "name:")
		resp.Examples = append(resp.Examples, Example{Name: unquote(name)})
	case strings.HasPrefix(line, "summary:"):
		if n := len(resp.Examples); n > 0 {
			resp.Examples[n-1].Summary = unquote(strings.TrimPrefix(line, "summary:"))
		}
	case strings.HasPrefix(line, "value:"):
		if n := len(resp.Examples); n > 0 {
			resp.Examples[n-1].Value = unquote(strings.TrimPrefix(line, "value:"))
		}
	}
}

func isResponseProp(line string) bool {
	for _, p := range responseProps {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
