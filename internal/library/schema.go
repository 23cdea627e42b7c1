package library

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// librarySchema is the contract the scrapers produce. Extra fields are
// tolerated so older library files keep loading; the required trio is
// what compilation cannot do without.
const librarySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title", "artist", "chords"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"artist": {"type": "string"},
			"release_year": {"type": "string"},
			"url": {"type": "string"},
			"chords": {"type": "string"},
			"annotated_lines": {"type": "string"},
			"formatted_lines": {"type": "string"}
		}
	}
}`

// validateSchema checks raw library JSON against the schema and folds
// all violations into one error.
func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(librarySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLibrary, err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidLibrary, strings.Join(problems, "; "))
}
