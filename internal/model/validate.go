package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultSchemaPath is where the server expects the resume schema relative
// to its working directory.
const DefaultSchemaPath = "templates/resume.schema.json"

// ValidateResume validates a generic resume payload against the bundled
// JSON schema. Validation is advisory: the renderer accepts partial data,
// so callers report failures to the user instead of refusing to render.
func ValidateResume(m map[string]interface{}) error {
	return ValidateResumeAgainst(DefaultSchemaPath, m)
}

// ValidateResumeAgainst validates against an explicit schema file. The
// schema is referenced by an absolute canonical file:// path so loaders on
// all platforms (including Windows) resolve it correctly.
func ValidateResumeAgainst(schemaPath string, m map[string]interface{}) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
