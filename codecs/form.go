package codecs

import (
	"io"
	"net/url"
	"sort"

	"github.com/gorilla/schema"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
	"github.com/illuscio-dev/anymedia-go/rejections"
)

// Handles encoding to / decoding from application/x-www-form-urlencoded.
// Content must be a struct (or struct pointer for decoding); form encoding
// has no representation for bare scalars or nested documents.
type formCodec struct {
	encoder *schema.Encoder
	decoder *schema.Decoder
}

// NewFormCodec returns the default application/x-www-form-urlencoded codec.
// Unknown form keys are ignored on decode.
func NewFormCodec() Codec {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &formCodec{
		encoder: schema.NewEncoder(),
		decoder: decoder,
	}
}

func (handler *formCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{
		mediatype.New("application", "x-www-form-urlencoded"),
	}
}

func (handler *formCodec) Encode(writer io.Writer, content interface{}) error {
	values := url.Values{}
	if err := handler.encoder.Encode(content, values); err != nil {
		return xerrors.Errorf("form encode: %w", err)
	}

	_, err := io.WriteString(writer, values.Encode())
	return err
}

func (handler *formCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return xerrors.Errorf("reading form content: %w", err)
	}

	values, err := url.ParseQuery(string(content))
	if err != nil {
		return xerrors.Errorf("form decode: %w", err)
	}

	err = handler.decoder.Decode(contentReceiver, values)
	if err == nil {
		return nil
	}

	multi := schema.MultiError{}
	if xerrors.As(err, &multi) && len(multi) > 0 {
		// Keys sorted so the reported field is deterministic.
		keys := make([]string, 0, len(multi))
		for key := range multi {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		return &rejections.FieldError{Path: keys[0], Err: multi[keys[0]]}
	}

	return xerrors.Errorf("form decode: %w", err)
}
