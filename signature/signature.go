// Package signature infers the semantic roles of a handler's types from a
// syntactic description of its parameter list and return type. It recognizes
// the single-argument body wrapper Json and the two-argument Result wrapper
// by name only; no alias resolution or real type checking happens here.
package signature

import "strings"

// TypeExpr is a syntactic type tree. Name is the head identifier and Args
// are the type arguments, so Json[User] is {Name: "Json", Args: [{Name:
// "User"}]}. A pointer is {Name: "*", Args: [inner]}.
type TypeExpr struct {
	Name string
	Args []TypeExpr
}

// String renders the tree back to a declared-type token, the form the
// schema layer keys components by.
func (t TypeExpr) String() string {
	if t.Name == "*" && len(t.Args) == 1 {
		return "*" + t.Args[0].String()
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "[" + strings.Join(parts, ", ") + "]"
}

// Param is one handler parameter: the binding name and its declared type.
type Param struct {
	Binding string
	Type    TypeExpr
}

// Types holds the inferred type names of a handler. Empty string means the
// role could not be inferred.
type Types struct {
	RequestBody string
	Response    string
	Error       string
}

// Extract scans the parameter list and return type and infers the request
// body, success payload and error types. A nil ret means the handler
// declares no return type.
func Extract(params []Param, ret *TypeExpr) Types {
	var out Types
	out.RequestBody = requestBodyType(params)
	if ret != nil {
		out.Response, out.Error = returnTypes(*ret)
	}
	return out
}

// requestBodyType returns the type argument of the first Json-wrapped
// parameter. Later Json parameters are ignored.
func requestBodyType(params []Param) string {
	for _, p := range params {
		if inner, ok := unwrapJSON(p.Type); ok {
			return inner.String()
		}
	}
	return ""
}

func returnTypes(ret TypeExpr) (response, errType string) {
	if headName(ret.Name) == "Result" && len(ret.Args) == 2 {
		if inner, ok := unwrapJSON(ret.Args[0]); ok {
			response = inner.String()
		}
		errType = ret.Args[1].String()
		return response, errType
	}
	if inner, ok := unwrapJSON(ret); ok {
		return inner.String(), ""
	}
	return "", ""
}

// unwrapJSON returns the type argument of a single-argument wrapper whose
// head identifier is Json.
func unwrapJSON(t TypeExpr) (TypeExpr, bool) {
	if headName(t.Name) == "Json" && len(t.Args) == 1 {
		return t.Args[0], true
	}
	return TypeExpr{}, false
}

// headName strips a package qualifier so axum.Json matches Json.
func headName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
