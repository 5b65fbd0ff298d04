package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-conf/document"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrMissingTag is returned when an element mapping has no "tag" key.
var ErrMissingTag = errors.New("element is missing a tag")

// Parser implements document.Parser for YAML documents using an explicit
// element shape:
//
//	tag: components
//	attrs:
//	  profile: dev
//	children:
//	  - tag: alias
//	    attrs: {name: datasource, alias: db}
//	  - tag: widget
//	    ns: https://example.com/schema/widgets
//
// The "ns" key sets the namespace URI; absent means the default vocabulary.
// A "text" key produces a single text child.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

type element struct {
	Tag      string            `yaml:"tag"`
	NS       string            `yaml:"ns"`
	Attrs    map[string]string `yaml:"attrs"`
	Text     string            `yaml:"text"`
	Children []element         `yaml:"children"`
}

// Parse unmarshals YAML data and converts it into an element tree.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root element

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return convert(root, "$")
}

func convert(el element, path string) (*document.Node, error) {
	if el.Tag == "" {
		return nil, fmt.Errorf("%w at %s", ErrMissingTag, path)
	}

	node := &document.Node{
		Kind:  document.ElementKind,
		Name:  document.Name{Space: el.NS, Local: el.Tag},
		Attrs: el.Attrs,
	}

	if el.Text != "" {
		node.Children = append(node.Children, &document.Node{
			Kind: document.TextKind,
			Text: el.Text,
		})
	}

	for i, child := range el.Children {
		childNode, err := convert(child, fmt.Sprintf("%s.%s[%d]", path, el.Tag, i))
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, childNode)
	}

	return node, nil
}
