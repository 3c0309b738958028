package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents returns components seeded with the shared error schema and
// the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"message"},
				Properties: map[string]*Schema{
					"message": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      ResponseJSON("Invalid request", "Error"),
			"NotFound":        ResponseJSON("Resource not found", "Error"),
			"TooLarge":        ResponseJSON("Request body too large", "Error"),
			"TooManyRequests": {Description: "Rate limit exceeded"},
			"InternalError":   ResponseJSON("Internal server error", "Error"),
		},
	}
}

// AddSchemas merges schemas, replacing existing entries with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema)
	}
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}
