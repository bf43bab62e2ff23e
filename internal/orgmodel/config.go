package orgmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadConfig reads an explicit org document from disk. Structural
// invalidity is the one fatal error class in the pipeline: no default
// substitution exists for a malformed document.
func LoadConfig(path string) (*Org, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	org, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return org, nil
}

// arrayFields are the top-level collections of the org document.
var arrayFields = []string{"agents", "skills", "mcps", "cli_tools", "teams", "lifecycle", "utilities"}

// ParseConfig decodes and validates an explicit org document. The shape is
// checked field by field before decoding so errors name the offending
// field rather than surfacing as a bare unmarshal failure.
func ParseConfig(data []byte) (*Org, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("document is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("document must be a JSON object")
	}
	if v := root.Get("name"); v.Exists() && v.Type != gjson.String {
		return nil, fmt.Errorf("field %q must be a string", "name")
	}
	for _, field := range arrayFields {
		if v := root.Get(field); v.Exists() && !v.IsArray() {
			return nil, fmt.Errorf("field %q must be an array", field)
		}
	}
	var shapeErr error
	root.Get("agents").ForEach(func(i, agent gjson.Result) bool {
		if !agent.IsObject() || agent.Get("name").Type != gjson.String {
			shapeErr = fmt.Errorf("agents[%d] must be an object with a string name", i.Int())
			return false
		}
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	root.Get("skills").ForEach(func(i, skill gjson.Result) bool {
		if !skill.IsObject() || skill.Get("name").Type != gjson.String {
			shapeErr = fmt.Errorf("skills[%d] must be an object with a string name", i.Int())
			return false
		}
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	var org Org
	if err := json.Unmarshal(data, &org); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	org.Normalize()
	return &org, nil
}
