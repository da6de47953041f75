package codec

import (
	"fmt"

	sieve "github.com/sievekit/sieve"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into the value model. Mappings with
// string keys arrive as map[string]any; other key shapes are rendered to
// strings so the schema layer sees one mapping type.
func ParseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}

// DumpYAML lowers v and encodes the primitive tree as YAML. Ordered maps
// keep their insertion order in the emitted document.
func DumpYAML(v any) ([]byte, error) {
	node, err := yamlNode(Lower(v))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// yamlNode builds a yaml.Node tree so ordered maps serialize in order;
// yaml.Marshal would otherwise sort plain map keys.
func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *sieve.OrderedMap:
		node := &yaml.Node{Kind: yaml.MappingNode}
		var err error
		t.Range(func(k string, item any) bool {
			var keyNode, valNode *yaml.Node
			keyNode = &yaml.Node{Kind: yaml.ScalarNode, Value: k}
			valNode, err = yamlNode(item)
			if err != nil {
				return false
			}
			node.Content = append(node.Content, keyNode, valNode)
			return true
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range t {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}
