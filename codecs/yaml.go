package codecs

import (
	"io"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Handles encoding to / decoding from application/yaml.
type yamlCodec struct{}

// NewYAMLCodec returns the default yaml codec. It advertises
// application/yaml first, then the legacy application/x-yaml alias.
func NewYAMLCodec() Codec {
	return &yamlCodec{}
}

func (handler *yamlCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{
		mediatype.New("application", "yaml"),
		mediatype.New("application", "x-yaml"),
	}
}

func (handler *yamlCodec) Encode(writer io.Writer, content interface{}) error {
	encoder := yaml.NewEncoder(writer)
	if err := encoder.Encode(content); err != nil {
		_ = encoder.Close()
		return xerrors.Errorf("yaml encode: %w", err)
	}
	return encoder.Close()
}

func (handler *yamlCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	if err := yaml.NewDecoder(reader).Decode(contentReceiver); err != nil {
		return xerrors.Errorf("yaml decode: %w", err)
	}
	return nil
}
