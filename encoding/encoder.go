// Package encoding renders and parses tool catalogs and tool inputs
// in JSON, YAML or TOML.
package encoding

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"
	jsonenc "github.com/madisonbullard/mcp-server-shortcut/encoding/json"
	tomlenc "github.com/madisonbullard/mcp-server-shortcut/encoding/toml"
	yamlenc "github.com/madisonbullard/mcp-server-shortcut/encoding/yaml"
)

type Encoder interface {
	Marshal(v any) ([]byte, error)
	Unmarshal([]byte, any) error
}

type Format = string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

var (
	_ Encoder = (*jsonenc.Encoder)(nil)
	_ Encoder = (*tomlenc.Encoder)(nil)
	_ Encoder = (*yamlenc.Encoder)(nil)
)

// New returns the encoder for the format
func New(format Format) (Encoder, error) {
	switch format {
	case FormatJSON:
		return jsonenc.NewEncoder(), nil
	case FormatYAML:
		return yamlenc.NewEncoder(), nil
	case FormatTOML:
		return tomlenc.NewEncoder(), nil
	default:
		return nil, errors.Newf("unsupported format: %s", format)
	}
}

// Example returns an instance of T populated with fake values,
// as described by the `fake` struct tags.
func Example[T any]() (*T, error) {
	v := new(T)
	if err := gofakeit.Struct(v); err != nil {
		return nil, errors.Wrap(err, "failed to generate example")
	}
	return v, nil
}
