package recipe

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema describes the Document JSON accepted by DecodeDocument and
// DecodeShare.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Document))
	schema.Title = "Glint Studio Recipe"
	schema.Description = "Saved or shared shader recipe: ordered effect instances, scoped parameter values and gradient colors"
	return schema
}

// WriteSchema writes Schema to path, replacing any existing file.
func WriteSchema(path string) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}
