package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/void-browser/void/internal/domain/entity"
)

// GenerateSchema returns the JSON schema of the settings document.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&entity.Settings{})

	schema.ID = "https://github.com/void-browser/void/settings.schema.json"
	schema.Title = "Void Browser Settings"
	schema.Description = "Settings document shared by the browser window and the void-hub start page"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
