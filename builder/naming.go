package builder

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// TranslatePath converts colon-style path parameters to the OpenAPI brace
// form, so /users/:id becomes /users/{id}. Static segments pass through
// unchanged. The transform is a single left-to-right scan with no state
// beyond the current parameter.
func TranslatePath(path string) string {
	var sb strings.Builder
	sb.Grow(len(path) + 2)

	inParam := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == ':' && !inParam:
			inParam = true
			sb.WriteByte('{')
		case c == '/' && inParam:
			inParam = false
			sb.WriteByte('}')
			sb.WriteByte('/')
		default:
			sb.WriteByte(c)
		}
	}
	if inParam {
		sb.WriteByte('}')
	}
	return sb.String()
}

// OperationID derives a stable operation identifier from the method and
// path template: the lower-cased method followed by the non-empty path
// segments joined with underscores, with each parameter segment rendered as
// "by_name". GET /users/:id yields get_users_by_id. Both :name and {name}
// parameter syntax are accepted.
func OperationID(method, path string) string {
	var parts []string
	parts = append(parts, strings.ToLower(method))
	for seg := range strings.SplitSeq(path, "/") {
		if seg == "" {
			continue
		}
		if name, ok := paramName(seg); ok {
			parts = append(parts, "by_"+strcase.ToSnake(name))
			continue
		}
		parts = append(parts, strcase.ToSnake(seg))
	}
	return strings.Join(parts, "_")
}

// paramName returns the parameter name of a :name or {name} path segment.
func paramName(seg string) (string, bool) {
	if strings.HasPrefix(seg, ":") {
		return seg[1:], true
	}
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

// schemaTitle renders a display title for a component schema. Type tokens
// in any casing normalize to PascalCase, so user_response and UserResponse
// both title as UserResponse.
func schemaTitle(name string) string {
	words := strings.Split(strcase.ToSnake(name), "_")
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, "")
}
