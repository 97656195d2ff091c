package components

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedOptions is returned for option documents that are neither a
// list of {value, label} entries nor a key to value mapping.
var ErrUnsupportedOptions = errors.New("unsupported options document")

// Option is one selectable entry. Value identifies it; labels may repeat.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// OptionSource is anything that can be turned into an ordered option list.
type OptionSource interface {
	Normalize() []Option
}

// OptionList is an explicit, already labelled list of options.
type OptionList []Option

// Normalize returns a copy of the list.
func (l OptionList) Normalize() []Option {
	if l == nil {
		return nil
	}
	out := make([]Option, len(l))
	copy(out, l)
	return out
}

// Pair is one key to value entry of a Mapping.
type Pair struct {
	Key   string
	Value string
}

// Mapping is an ordered key to value mapping. Keys become labels.
type Mapping []Pair

// Normalize turns every key into a label (NEW_YORK -> New York) and keeps
// the value as is.
func (m Mapping) Normalize() []Option {
	if m == nil {
		return nil
	}
	out := make([]Option, len(m))
	for i, p := range m {
		out[i] = Option{Value: p.Value, Label: LabelFromKey(p.Key)}
	}
	return out
}

// NormalizeOptions flattens src into an ordered option list. A nil source
// yields nil.
func NormalizeOptions(src OptionSource) []Option {
	if src == nil {
		return nil
	}
	return src.Normalize()
}

// LabelFromKey splits key on underscores and capitalizes each word.
func LabelFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := []rune(strings.ToLower(w))
		words[i] = strings.ToUpper(string(lower[0])) + string(lower[1:])
	}
	return strings.Join(words, " ")
}

// LoadOptionsFile reads a YAML options document. It accepts either a
// sequence of {value, label} entries or a mapping whose keys become labels,
// in document order.
func LoadOptionsFile(path string) (OptionSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	src, err := ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ParseOptions decodes a YAML options document.
func ParseOptions(data []byte) (OptionSource, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return OptionList{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list OptionList
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedOptions, err)
		}
		for i, opt := range list {
			if opt.Value == "" {
				return nil, fmt.Errorf("%w: entry %d has no value", ErrUnsupportedOptions, i)
			}
			if opt.Label == "" {
				list[i].Label = opt.Value
			}
		}
		return list, nil

	case yaml.MappingNode:
		m := make(Mapping, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], root.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: mapping values must be scalars (line %d)", ErrUnsupportedOptions, k.Line)
			}
			m = append(m, Pair{Key: k.Value, Value: v.Value})
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: expected a list or a mapping", ErrUnsupportedOptions)
	}
}

// FindOption returns the index of the option whose value is value, or -1.
func FindOption(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
