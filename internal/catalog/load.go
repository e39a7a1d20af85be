package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-checker/internal/schemas"
	"github.com/jonathan/ats-checker/internal/types"
	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a custom catalog.
type File struct {
	Skills []types.SkillDescriptor `json:"skills" yaml:"skills"`
}

// LoadFile reads a catalog from a .json, .yaml or .yml file.
// The document is checked against the catalog schema when the schema can be found,
// then validated by New.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse decodes catalog data; the format is chosen from the extension of name.
func Parse(name string, data []byte) (*Catalog, error) {
	var jsonDoc []byte
	var file File

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, &LoadError{Path: name, Message: "invalid JSON", Cause: err}
		}
		jsonDoc = data
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, &LoadError{Path: name, Message: "invalid YAML", Cause: err}
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, &LoadError{Path: name, Message: "invalid YAML", Cause: err}
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return nil, &LoadError{Path: name, Message: "YAML document is not representable as JSON", Cause: err}
		}
		jsonDoc = converted
	default:
		return nil, &LoadError{Path: name, Message: fmt.Sprintf("unsupported catalog format %q (use .json, .yaml or .yml)", ext)}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.SkillCatalogSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonDoc); err != nil {
			return nil, &LoadError{Path: name, Message: "catalog does not match schema", Cause: err}
		}
	}

	for i := range file.Skills {
		if file.Skills[i].Synonyms == nil {
			file.Skills[i].Synonyms = []string{}
		}
	}

	return New(file.Skills)
}
