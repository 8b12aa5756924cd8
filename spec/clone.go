package spec

// Clone returns a deep copy of the document. Builders hand out clones so
// callers can never mutate state guarded by the builder's lock.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		OpenAPI: d.OpenAPI,
		Info:    d.Info,
	}
	if d.Paths != nil {
		out.Paths = make(Paths, len(d.Paths))
		for p, item := range d.Paths {
			out.Paths[p] = item.Clone()
		}
	}
	if d.Components != nil {
		out.Components = &Components{}
		if d.Components.Schemas != nil {
			out.Components.Schemas = make(map[string]*Schema, len(d.Components.Schemas))
			for name, s := range d.Components.Schemas {
				out.Components.Schemas[name] = s.Clone()
			}
		}
	}
	return out
}

// Clone returns a deep copy of the path item.
func (pi *PathItem) Clone() *PathItem {
	if pi == nil {
		return nil
	}
	return &PathItem{
		Get:    pi.Get.Clone(),
		Put:    pi.Put.Clone(),
		Post:   pi.Post.Clone(),
		Delete: pi.Delete.Clone(),
		Patch:  pi.Patch.Clone(),
	}
}

// Clone returns a deep copy of the operation.
func (op *Operation) Clone() *Operation {
	if op == nil {
		return nil
	}
	out := &Operation{
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
	}
	if op.Tags != nil {
		out.Tags = append([]string(nil), op.Tags...)
	}
	if op.Parameters != nil {
		out.Parameters = make([]*Parameter, len(op.Parameters))
		for i, p := range op.Parameters {
			out.Parameters[i] = p.Clone()
		}
	}
	out.RequestBody = op.RequestBody.Clone()
	if op.Responses != nil {
		out.Responses = make(Responses, len(op.Responses))
		for code, r := range op.Responses {
			out.Responses[code] = r.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	out := *p
	out.Schema = p.Schema.Clone()
	return &out
}

// Clone returns a deep copy of the request body.
func (rb *RequestBody) Clone() *RequestBody {
	if rb == nil {
		return nil
	}
	return &RequestBody{
		Description: rb.Description,
		Required:    rb.Required,
		Content:     cloneContent(rb.Content),
	}
}

// Clone returns a deep copy of the response.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	return &Response{
		Description: r.Description,
		Content:     cloneContent(r.Content),
	}
}

// Clone returns a deep copy of the media type.
func (mt *MediaType) Clone() *MediaType {
	if mt == nil {
		return nil
	}
	out := &MediaType{Schema: mt.Schema.Clone()}
	if mt.Examples != nil {
		out.Examples = make(map[string]*Example, len(mt.Examples))
		for name, ex := range mt.Examples {
			out.Examples[name] = ex.Clone()
		}
	}
	return out
}

// Clone returns a copy of the example. Value is shared, not copied: example
// values are treated as immutable once parsed.
func (ex *Example) Clone() *Example {
	if ex == nil {
		return nil
	}
	out := *ex
	return &out
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.Clone()
		}
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	out.Items = s.Items.Clone()
	out.AdditionalProperties = s.AdditionalProperties.Clone()
	return &out
}

func cloneContent(content map[string]*MediaType) map[string]*MediaType {
	if content == nil {
		return nil
	}
	out := make(map[string]*MediaType, len(content))
	for mt, m := range content {
		out[mt] = m.Clone()
	}
	return out
}
