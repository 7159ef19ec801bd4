package understanding

import "github.com/invopop/jsonschema"

// ResultSchema reflects the wire shape into a JSON schema, for collaborator
// adapters that request structured output from their model.
func ResultSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(WireResult{})
}
