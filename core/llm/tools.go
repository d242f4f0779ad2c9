package llm

// Param describes a single tool parameter.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// ToolSpec declares a callable tool to the model. Specs are immutable and
// declared once at startup.
type ToolSpec struct {
	Name        string
	Description string
	Params      []Param
}

// Schema renders the parameter list as a JSON Schema object in the shape the
// chat-completions API expects.
func (s ToolSpec) Schema() map[string]any {
	properties := make(map[string]any, len(s.Params))
	required := make([]string, 0, len(s.Params))

	for _, p := range s.Params {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
