package codecs

import (
	"encoding/json"
	"io"
	"strconv"

	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
	"github.com/illuscio-dev/anymedia-go/rejections"
)

// Handles encoding to / decoding from application/json.
//
// Built on encoding/json rather than a streaming handle because its type
// errors carry the dotted path to the offending field, which decode
// rejections must surface to the client.
type jsonCodec struct{}

// NewJSONCodec returns the default application/json codec.
func NewJSONCodec() Codec {
	return &jsonCodec{}
}

func (handler *jsonCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.New("application", "json")}
}

func (handler *jsonCodec) Encode(writer io.Writer, content interface{}) error {
	if err := json.NewEncoder(writer).Encode(content); err != nil {
		return xerrors.Errorf("json encode: %w", err)
	}
	return nil
}

func (handler *jsonCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	err := json.NewDecoder(reader).Decode(contentReceiver)
	if err == nil {
		return nil
	}

	typeErr := &json.UnmarshalTypeError{}
	if xerrors.As(err, &typeErr) && typeErr.Field != "" {
		return &rejections.FieldError{Path: typeErr.Field, Err: err}
	}

	syntaxErr := &json.SyntaxError{}
	if xerrors.As(err, &syntaxErr) {
		return &rejections.FieldError{
			Path: "offset " + strconv.FormatInt(syntaxErr.Offset, 10),
			Err:  err,
		}
	}

	return xerrors.Errorf("json decode: %w", err)
}
