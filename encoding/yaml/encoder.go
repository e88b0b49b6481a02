package yaml

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Encoder marshals YAML indented with two spaces
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	return b.Bytes(), nil
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := trimBackticks(bs)
	return errors.WithStack(yaml.Unmarshal(data, ret))
}

// trimBackticks removes the ```yaml fence around the document
func trimBackticks(bs []byte) []byte {
	data := bytes.TrimSpace(bs)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	data = bytes.TrimPrefix(data, []byte("```"))
	data = bytes.TrimPrefix(data, []byte("yaml"))
	data = bytes.TrimPrefix(data, []byte("yml"))
	data = bytes.TrimSuffix(data, []byte("```"))
	return bytes.TrimSpace(data)
}
