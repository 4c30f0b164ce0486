package codecs

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Handles encoding to / decoding from text/plain.
type textCodec struct{}

// NewTextCodec returns the default text/plain codec.
func NewTextCodec() Codec {
	return &textCodec{}
}

func (handler *textCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.New("text", "plain")}
}

func (handler *textCodec) Encode(writer io.Writer, content interface{}) error {
	_, err := io.WriteString(writer, fmt.Sprint(content))
	return err
}

func (handler *textCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	stringPointer, ok := contentReceiver.(*string)
	if !ok {
		return xerrors.New(
			"content receiver must be a string pointer to receive text",
		)
	}

	buffer := new(bytes.Buffer)
	if _, err := buffer.ReadFrom(reader); err != nil {
		return err
	}

	*stringPointer = buffer.String()

	return nil
}
