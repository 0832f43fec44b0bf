// Package printer echoes validated configuration documents.
package printer

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
)

// Format specifies the output format of the echoed document.
type Format string

const (
	// FormatJSON re-indents the document with two spaces, keeping key order.
	FormatJSON Format = "json"
	// FormatYAML produces block-style YAML, keeping key order.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML. Keys within a table are sorted.
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrEncode marks a document that cannot be written in the chosen format.
var ErrEncode = errors.New("document cannot be encoded")

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat converts a format name to a Format. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Printer writes documents in a single format.
type Printer struct {
	out    io.Writer
	format Format
}

// New creates a new Printer. An empty format means FormatJSON.
func New(out io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatJSON
	}
	return &Printer{
		out:    out,
		format: format,
	}
}

// Print writes doc followed by a newline.
func (p *Printer) Print(doc *hwconfig.Document) error {
	var (
		data []byte
		err  error
	)

	switch p.format {
	case FormatJSON:
		data, err = indentJSON(doc.Raw)
	case FormatYAML:
		data, err = toYAML(doc.Raw)
	case FormatTOML:
		data, err = toTOML(doc)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(p.format))
	}
	if err != nil {
		return errors.Mark(err, ErrEncode)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = p.out.Write(data)
	return errors.Wrap(err, "writing document")
}

// indentJSON re-indents raw JSON without decoding it, so key order and
// number literals survive unchanged.
func indentJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return nil, errors.Wrap(err, "indenting JSON")
	}
	return buf.Bytes(), nil
}

// toYAML re-emits raw JSON as block-style YAML. The node tree is built
// from the JSON token stream, so mapping order follows the input.
func toYAML(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	root, err := yamlNode(dec)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, "encoding YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding YAML")
	}
	return buf.Bytes(), nil
}

// yamlNode consumes one JSON value from dec.
func yamlNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if t == '{' {
			node.Kind, node.Tag = yaml.MappingNode, "!!map"
		}
		for dec.More() {
			if node.Kind == yaml.MappingNode {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, scalar("!!str", key.(string)))
			}
			child, err := yamlNode(dec)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	case string:
		return scalar("!!str", t), nil
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return scalar("!!float", t.String()), nil
		}
		return scalar("!!int", t.String()), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	default:
		return scalar("!!null", "null"), nil
	}
}

// scalar builds an unstyled scalar node. The encoder quotes strings that
// would otherwise read back as another type ("True", "100").
func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// toTOML requires an object root, since a TOML document is a table.
func toTOML(doc *hwconfig.Document) ([]byte, error) {
	cfg, ok := doc.Config()
	if !ok {
		return nil, errors.New("TOML output requires an object at the document root")
	}

	v, err := tomlValue(cfg, "")
	if err != nil {
		return nil, err
	}

	data, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encoding TOML")
	}
	return data, nil
}

// tomlValue converts json.Number leaves into native numbers, which the
// TOML encoder would otherwise write as strings. TOML has no null, so a
// null anywhere in the document is an error naming its path.
func tomlValue(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil:
		if path == "" {
			path = "document root"
		}
		return nil, errors.Newf("null at %s has no TOML representation", path)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			child := k
			if path != "" {
				child = path + "." + k
			}
			conv, err := tomlValue(val, child)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			conv, err := tomlValue(val, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		if f, err := t.Float64(); err == nil && !math.IsInf(f, 0) {
			return f, nil
		}
		return t.String(), nil
	default:
		return v, nil
	}
}
