package heroes

import "github.com/JaimeStill/hero-catalog/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Find   *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List heroes",
		Description: "Returns a page of heroes, newest first, each with its images",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed, default 1)", false),
			openapi.QueryParam("pageSize", "integer", "Results per page (default 5)", false),
			openapi.QueryParam("q", "string", "Case-insensitive nickname substring", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of heroes", "HeroPageResult"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create hero",
		Description: "Creates a hero. Image URLs are trimmed and blank entries dropped",
		RequestBody: openapi.RequestBodyJSON("CreateHeroCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created hero", "Hero"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("TooLarge"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get hero",
		Description: "Returns a hero with its images",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Hero UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Hero with images", "Hero"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update hero",
		Description: "Updates the supplied fields. A null text field is cleared. " +
			"When images is present, even as [] or null, the whole image set is replaced",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Hero UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateHeroCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated hero", "Hero"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("TooLarge"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete hero",
		Description: "Deletes a hero and all of its images",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Hero UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Deletion acknowledged", "DeleteResult"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	text := func() *openapi.Schema { return &openapi.Schema{Type: openapi.Nullable("string")} }
	urls := &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}

	return map[string]*openapi.Schema{
		"Image": {
			Type:     "object",
			Required: []string{"id", "heroId", "url"},
			Properties: map[string]*openapi.Schema{
				"id":     {Type: "string", Format: "uuid"},
				"heroId": {Type: "string", Format: "uuid"},
				"url":    {Type: "string", Example: "https://example.com/batman.jpg"},
			},
		},
		"Hero": {
			Type:     "object",
			Required: []string{"id", "nickname", "createdAt", "updatedAt", "images"},
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "string", Format: "uuid"},
				"nickname":          {Type: "string", Example: "Batman"},
				"realName":          text(),
				"originDescription": text(),
				"superpowers":       text(),
				"catchPhrase":       text(),
				"createdAt":         {Type: "string", Format: "date-time"},
				"updatedAt":         {Type: "string", Format: "date-time"},
				"images":            {Type: "array", Items: openapi.SchemaRef("Image")},
			},
		},
		"HeroPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":       {Type: "array", Items: openapi.SchemaRef("Hero")},
				"page":       {Type: "integer"},
				"pageSize":   {Type: "integer"},
				"total":      {Type: "integer"},
				"totalPages": {Type: "integer"},
			},
		},
		"CreateHeroCommand": {
			Type:     "object",
			Required: []string{"nickname"},
			Properties: map[string]*openapi.Schema{
				"nickname":          {Type: "string", Description: "Must not be blank"},
				"realName":          text(),
				"originDescription": text(),
				"superpowers":       text(),
				"catchPhrase":       text(),
				"images":            urls,
			},
		},
		"UpdateHeroCommand": {
			Type:        "object",
			Description: "Any subset of hero fields",
			Properties: map[string]*openapi.Schema{
				"nickname":          {Type: "string", Description: "Must not be blank when present"},
				"realName":          text(),
				"originDescription": text(),
				"superpowers":       text(),
				"catchPhrase":       text(),
				"images":            {Type: openapi.Nullable("array"), Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DeleteResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
			},
		},
	}
}
