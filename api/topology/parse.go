// SPDX-License-Identifier:Apache-2.0

package topology

import (
	"fmt"

	"sigs.k8s.io/yaml"
	goyaml "sigs.k8s.io/yaml/goyaml.v2"
)

// ParseConfig decodes a YAML (or JSON) L3OutConfig. The YAML to JSON
// conversion sorts object keys, which would silently rebind address
// allocation to alphabetical path-key order; the document order of the
// paths is read back out of the YAML stream and reapplied. All YAML
// loading must come through here, not through yaml.Unmarshal directly.
func ParseConfig(data []byte) (*L3OutConfig, error) {
	var cfg L3OutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	keys, err := pathKeyOrder(data)
	if err != nil {
		return nil, err
	}
	ordered, err := cfg.Paths.reordered(keys)
	if err != nil {
		return nil, err
	}
	cfg.Paths = ordered

	return &cfg, nil
}

// pathKeyOrder returns the path keys in the order the document lists them.
// goyaml's MapSlice is the one mapping representation that keeps it.
func pathKeyOrder(data []byte) ([]string, error) {
	var doc struct {
		Paths goyaml.MapSlice `yaml:"paths"`
	}
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to read path order: %w", err)
	}

	keys := make([]string, 0, len(doc.Paths))
	for _, item := range doc.Paths {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("path key %v must be a string", item.Key)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (p PathList) reordered(keys []string) (PathList, error) {
	if len(keys) != len(p) {
		return nil, fmt.Errorf("document lists %d paths, decoded %d", len(keys), len(p))
	}

	byKey := make(map[string]Path, len(p))
	for _, path := range p {
		byKey[path.Key] = path
	}

	res := make(PathList, 0, len(p))
	for _, key := range keys {
		path, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("path %s missing from decoded config", key)
		}
		res = append(res, path)
	}
	return res, nil
}
