package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// NormalizeFile reads a contract file and returns it as a string the
// resolver understands. YAML contracts are re-encoded as JSON so the paths
// tier sees the same shape regardless of source format; everything else
// passes through untouched and falls to the text tiers.
func NormalizeFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read contract file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var doc yaml.Node
		if err := yaml.Unmarshal(content, &doc); err != nil {
			// Not YAML after all; let the text tiers have it.
			return string(content), nil
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 ||
			doc.Content[0].Kind != yaml.MappingNode {
			return string(content), nil
		}

		var b strings.Builder
		if err := encodeNodeJSON(&b, doc.Content[0]); err != nil {
			return "", fmt.Errorf("failed to normalize YAML contract: %w", err)
		}
		return b.String(), nil
	}

	return string(content), nil
}

// encodeNodeJSON renders a YAML node as JSON by walking the node tree
// directly. Decoding into a Go map first would lose mapping key order,
// and the resolver expands paths in document order.
func encodeNodeJSON(b *strings.Builder, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		b.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteByte(':')
			if err := encodeNodeJSON(b, n.Content[i+1]); err != nil {
				return err
			}
		}
		b.WriteByte('}')

	case yaml.SequenceNode:
		b.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := encodeNodeJSON(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')

	case yaml.AliasNode:
		return encodeNodeJSON(b, n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b.Write(data)

	default:
		return fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}

	return nil
}
