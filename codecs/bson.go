package codecs

import (
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Handles encoding to / decoding from application/bson. Content must be a
// bson document (struct or map); bson has no top-level representation for
// scalars or arrays.
type bsonCodec struct{}

// NewBSONCodec returns the default application/bson codec.
func NewBSONCodec() Codec {
	return &bsonCodec{}
}

func (handler *bsonCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.New("application", "bson")}
}

func (handler *bsonCodec) Encode(writer io.Writer, content interface{}) error {
	data, err := bson.Marshal(content)
	if err != nil {
		return xerrors.Errorf("bson encode: %w", err)
	}

	_, err = writer.Write(data)
	return err
}

func (handler *bsonCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return xerrors.Errorf("reading bson content: %w", err)
	}

	if err := bson.Unmarshal(data, contentReceiver); err != nil {
		return xerrors.Errorf("bson decode: %w", err)
	}
	return nil
}
