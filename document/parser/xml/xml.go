package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/hjarta-conf/document"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNoRootElement is returned when the document contains no element.
var ErrNoRootElement = errors.New("no root element")

// Parser implements document.Parser for XML data. Namespace prefixes are
// resolved to their URIs by the decoder, so node names carry full namespace
// URIs in Name.Space.
type Parser struct{}

// NewParser creates a new XML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes XML data into an element tree rooted at the document element.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	root, err := nextElement(decoder)
	if err != nil {
		return nil, err
	}

	if root == nil {
		return nil, ErrNoRootElement
	}

	return root, nil
}

// nextElement consumes tokens until the next start element and builds its
// subtree, or returns nil at end of input.
func nextElement(decoder *xml.Decoder) (*document.Node, error) {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		if err != nil {
			return nil, fmt.Errorf("decoding token: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		return buildElement(decoder, start)
	}
}

func buildElement(decoder *xml.Decoder, start xml.StartElement) (*document.Node, error) {
	node := &document.Node{
		Kind: document.ElementKind,
		Name: document.Name{Space: start.Name.Space, Local: start.Name.Local},
	}

	for _, attr := range start.Attr {
		// Namespace declarations are not document attributes.
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}

		if node.Attrs == nil {
			node.Attrs = make(map[string]string, len(start.Attr))
		}

		node.Attrs[attr.Name.Local] = attr.Value
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", start.Name.Local, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := buildElement(decoder, t)
			if err != nil {
				return nil, err
			}

			node.Children = append(node.Children, child)
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) != "" {
				node.Children = append(node.Children, &document.Node{
					Kind: document.TextKind,
					Text: text,
				})
			}
		case xml.Comment:
			node.Children = append(node.Children, &document.Node{
				Kind: document.CommentKind,
				Text: string(t),
			})
		case xml.EndElement:
			return node, nil
		}
	}
}
