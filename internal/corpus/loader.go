package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the corpus file format version written by Marshal.
const CurrentVersion = "1"

// document is the on-disk layout. Pairs is kept as a node so that mapping
// order and source lines survive decoding.
type document struct {
	Version string    `yaml:"version"`
	Pairs   yaml.Node `yaml:"pairs"`
}

type pairItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// LoadFile loads and parses a YAML corpus file from the given path.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse parses YAML data into a Corpus.
func Parse(data []byte) (*Corpus, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
	}

	applyDefaults(&doc)

	if doc.Version != CurrentVersion {
		return nil, fmt.Errorf("%w %q (want %q)", ErrUnsupportedVersion, doc.Version, CurrentVersion)
	}

	entries, err := decodePairs(&doc.Pairs)
	if err != nil {
		return nil, err
	}

	return New(entries...)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
}

func decodePairs(node *yaml.Node) ([]Entry, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.SequenceNode:
		return decodeSequence(node)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("%w: line %d: expected a mapping or a sequence", ErrInvalidPairs, node.Line)
}

func decodeMapping(node *yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(node.Content)/2)
	seen := make(map[string]int, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: question must be a string", ErrInvalidPairs, key.Line)
		}

		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: answer for %q must be a string", ErrInvalidPairs, value.Line, key.Value)
		}

		if first, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("%w %q: line %d and line %d", ErrDuplicateQuestion, key.Value, first, key.Line)
		}

		seen[key.Value] = key.Line

		entries = append(entries, Entry{
			Question: key.Value,
			Answer:   value.Value,
			Line:     key.Line,
		})
	}

	return entries, nil
}

func decodeSequence(node *yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(node.Content))

	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: expected a question/answer mapping", ErrInvalidPairs, item.Line)
		}

		var p pairItem
		if err := item.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidPairs, item.Line, err)
		}

		entries = append(entries, Entry{
			Question: p.Question,
			Answer:   p.Answer,
			Line:     item.Line,
		})
	}

	return entries, nil
}

// Marshal serializes a Corpus to YAML in the mapping form, keeping corpus order.
func Marshal(c *Corpus) ([]byte, error) {
	pairs := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range c.Entries() {
		pairs.Content = append(pairs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Question},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Answer},
		)
	}

	out := struct {
		Version string     `yaml:"version"`
		Pairs   *yaml.Node `yaml:"pairs"`
	}{
		Version: CurrentVersion,
		Pairs:   pairs,
	}

	return yaml.Marshal(&out)
}

// WriteFile writes a Corpus to the given path.
func WriteFile(c *Corpus, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus file %s: %w", path, err)
	}

	return nil
}
