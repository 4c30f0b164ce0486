package codecs

import (
	"io"

	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Handles encoding to / decoding from application/cbor.
type cborCodec struct {
	handle *codec.CborHandle
}

// NewCBORCodec returns the default application/cbor codec.
func NewCBORCodec() Codec {
	return &cborCodec{handle: &codec.CborHandle{}}
}

func (handler *cborCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.New("application", "cbor")}
}

func (handler *cborCodec) Encode(writer io.Writer, content interface{}) error {
	if err := codec.NewEncoder(writer, handler.handle).Encode(content); err != nil {
		return xerrors.Errorf("cbor encode: %w", err)
	}
	return nil
}

func (handler *cborCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	if err := codec.NewDecoder(reader, handler.handle).Decode(contentReceiver); err != nil {
		return xerrors.Errorf("cbor decode: %w", err)
	}
	return nil
}
