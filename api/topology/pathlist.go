// SPDX-License-Identifier:Apache-2.0

package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PathList is an ordered set of paths. The wire format is a JSON/YAML object
// keyed by path key; Go maps drop the document order, so JSON decoding walks
// the raw object token by token and keeps the keys in the order they appear.
// That order is what address allocation binds to. YAML documents must be
// loaded through ParseConfig: the YAML to JSON conversion re-sorts object
// keys, and ParseConfig restores the document order afterwards.
type PathList []Path

func (p *PathList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode paths: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("paths must be an object, got %v", tok)
	}

	res := PathList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode path key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("path key must be a string, got %v", keyTok)
		}

		var path Path
		if err := dec.Decode(&path); err != nil {
			return fmt.Errorf("failed to decode path %s: %w", key, err)
		}
		path.Key = key
		res = append(res, path)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode paths: %w", err)
	}

	*p = res
	return nil
}

func (p PathList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(path)
		if err != nil {
			return nil, fmt.Errorf("failed to encode path %s: %w", path.Key, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
