package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const suffix = ".schema.json"

// Names lists the record types that have a schema.
func Names() []string {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw schema document for a record type.
func Source(name string) ([]byte, error) {
	raw, err := schemaFS.ReadFile("schemas/" + name + suffix)
	if err != nil {
		return nil, fmt.Errorf("no schema for %s: %w", name, err)
	}
	return raw, nil
}

// Validate checks doc against the schema of the named record type and
// returns one string per violation.
func Validate(name string, doc any) ([]string, error) {
	raw, err := Source(name)
	if err != nil {
		return nil, err
	}
	schemaLoader := gojsonschema.NewBytesLoader(raw)
	docLoader := gojsonschema.NewGoLoader(doc)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
