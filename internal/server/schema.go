// internal/server/schema.go
package server

// Structural contracts for the quote endpoints. Types and required keys are
// enforced here; enum literals and numeric bounds belong to the domain
// validator.

const configurationSchemaFragment = `{
	"type": "object",
	"required": ["projectType", "design", "quality", "timeline"],
	"properties": {
		"projectType": {"type": "string"},
		"design": {
			"type": "object",
			"required": ["level", "pageCountBand", "responsiveness", "uxComplexity"],
			"properties": {
				"level": {"type": "string"},
				"pageCountBand": {"type": "string"},
				"responsiveness": {"type": "string"},
				"uxComplexity": {"type": "string"}
			}
		},
		"features": {"type": "object"},
		"quality": {
			"type": "object",
			"required": ["seo", "performance", "security", "testing", "accessibility"],
			"properties": {
				"seo": {"type": "string"},
				"performance": {"type": "string"},
				"security": {"type": "string"},
				"testing": {"type": "string"},
				"accessibility": {"type": "string"},
				"dsgvo": {"type": "boolean"}
			}
		},
		"timeline": {
			"type": "object",
			"required": ["projectStart"],
			"properties": {
				"projectStart": {"type": "string"},
				"maintenance": {"type": "string"},
				"supportDuration": {"type": "integer"},
				"hosting": {"type": "boolean"},
				"training": {"type": "boolean"}
			}
		},
		"preferredProvider": {"type": "string"}
	}
}`

const quoteRequestSchema = `{
	"type": "object",
	"required": ["contact", "configuration"],
	"properties": {
		"currentStep": {"type": "integer", "minimum": 1, "maximum": 6},
		"contact": {
			"type": "object",
			"required": ["name", "email"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"email": {"type": "string", "format": "email"},
				"company": {"type": "string"},
				"phone": {"type": "string"},
				"message": {"type": "string"}
			}
		},
		"configuration": ` + configurationSchemaFragment + `
	}
}`

const previewRequestSchema = `{
	"type": "object",
	"required": ["configuration"],
	"properties": {
		"currentStep": {"type": "integer", "minimum": 1, "maximum": 6},
		"configuration": ` + configurationSchemaFragment + `
	}
}`
