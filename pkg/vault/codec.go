package vault

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// decode parses the vault file: a flat YAML mapping of domain to identifier.
//
// The file is hand-editable, so anything yaml.v3 accepts as a scalar is taken
// at face value (`example.com: 1234` yields identifier "1234"), and a null
// value (`example.com:`) yields the empty identifier. Any other shape is
// reported as an error.
func decode(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// comments only
		return entries, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == nullTag {
		return entries, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("vault root is not a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: domain is not a scalar", key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: identifier for %q is not a scalar", val.Line, key.Value)
		}
		id := val.Value
		if val.Tag == nullTag {
			id = ""
		}
		entries[key.Value] = id
	}
	return entries, nil
}

// encode renders entries as a YAML mapping with sorted keys.
func encode(entries map[string]string) ([]byte, error) {
	if entries == nil {
		entries = map[string]string{}
	}
	return yaml.Marshal(entries)
}
