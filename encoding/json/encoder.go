package json

import (
	"encoding/json"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"
	"github.com/madisonbullard/mcp-server-shortcut/utils"
)

// Encoder marshals indented JSON, and unmarshals JSON leniently:
// the document may be fenced or surrounded by text.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := utils.CleanJSON(bs)
	if len(data) == 0 {
		return errors.New("no JSON document found")
	}
	return errors.WithStack(ljson.Unmarshal(data, ret))
}
