// Package datafile loads CLI data sources from JSON and YAML files and from
// KEY=VALUE pairs.
package datafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Load reads a data file into a string-keyed map. The decoder is chosen by
// extension: .json uses ojg, .yaml/.yml use yaml.v3. The top-level value
// must be an object.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v, err := oj.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("data file %s: top-level value must be an object", path)
		}
		return m, nil
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if m == nil {
			m = map[string]any{}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("data file %s: unsupported extension (want .json, .yaml, or .yml)", path)
	}
}

// ParseSet parses one --set style KEY=VALUE pair. Dotted keys expand into
// nested maps: "user.name=ada" becomes {"user": {"name": "ada"}}.
func ParseSet(pair string) (map[string]any, error) {
	eq := strings.IndexByte(pair, '=')
	if eq <= 0 {
		return nil, fmt.Errorf("invalid set pair %q (want KEY=VALUE)", pair)
	}
	key, value := pair[:eq], pair[eq+1:]

	m := map[string]any{}
	cur := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid set pair %q: empty key segment", pair)
		}
		if i == len(parts)-1 {
			cur[part] = value
			break
		}
		next := map[string]any{}
		cur[part] = next
		cur = next
	}
	return m, nil
}

// Merge deep-merges src into dst. Maps merge recursively; on any other
// conflict src wins.
func Merge(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				Merge(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}
