package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/allpairs/core"
)

// YAMLDecoder reads one graph per YAML document.
type YAMLDecoder struct {
	dec *yaml.Decoder
	doc int
}

// NewYAMLDecoder returns a decoder reading from r. Unknown keys are errors.
func NewYAMLDecoder(r io.Reader) *YAMLDecoder {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	return &YAMLDecoder{dec: dec}
}

// Next decodes the next document. It returns io.EOF when no document remains.
func (d *YAMLDecoder) Next() (core.Description, error) {
	var desc core.Description
	d.doc++
	if err := d.dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Description{}, io.EOF
		}
		return core.Description{}, fmt.Errorf("%w: document %d: %v", ErrMalformed, d.doc, err)
	}

	return desc, nil
}
