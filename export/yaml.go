package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/value"
)

// encodeYAML mirrors the JSON layout:
//
//   - time: {value: 1700000000, unit: ""}
//     TVL: {value: 30.5, unit: °C}
//
// Nodes are built by hand to keep field order.
func encodeYAML(w io.Writer, series sample.Series) error {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range series {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for name, v := range s.All() {
			val, unit := v.Persisted()
			m.Content = append(m.Content,
				scalar("!!str", name),
				&yaml.Node{
					Kind:  yaml.MappingNode,
					Style: yaml.FlowStyle,
					Content: []*yaml.Node{
						scalar("!!str", "value"), valueNode(val),
						scalar("!!str", "unit"), scalar("!!str", unit),
					},
				},
			)
		}
		root.Content = append(root.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}

	return enc.Close()
}

func scalar(tag, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func valueNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return scalar("!!null", "null")
	case bool:
		return scalar("!!bool", strconv.FormatBool(x))
	case int64:
		return scalar("!!int", strconv.FormatInt(x, 10))
	case float64:
		return scalar("!!float", floatLiteral(x))
	case string:
		return scalar("!!str", x)
	default:
		return scalar("!!str", fmt.Sprint(x))
	}
}

// floatLiteral formats f so that it resolves back to a YAML float.
func floatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

type yamlValue struct {
	Value any    `yaml:"value"`
	Unit  string `yaml:"unit"`
}

func decodeYAML(r io.Reader) (sample.Series, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return sample.Series{}, nil
		}

		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yaml: line %d: expected a sequence of samples", root.Line)
	}

	series := make(sample.Series, 0, len(root.Content))
	for _, m := range root.Content {
		if m.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("yaml: line %d: expected a sample mapping", m.Line)
		}

		s := sample.New(len(m.Content) / 2)
		for i := 0; i+1 < len(m.Content); i += 2 {
			var fv yamlValue
			if err := m.Content[i+1].Decode(&fv); err != nil {
				return nil, fmt.Errorf("yaml: field %q: %w", m.Content[i].Value, err)
			}
			s.Set(m.Content[i].Value, value.Of(fv.Value, fv.Unit))
		}
		series = append(series, s)
	}

	return series, nil
}
