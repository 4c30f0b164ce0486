package codecs

import (
	"io"

	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Handles encoding to / decoding from application/msgpack.
type msgpackCodec struct {
	handle *codec.MsgpackHandle
}

// NewMsgpackCodec returns the default application/msgpack codec.
func NewMsgpackCodec() Codec {
	handle := &codec.MsgpackHandle{}
	handle.WriteExt = true
	return &msgpackCodec{handle: handle}
}

func (handler *msgpackCodec) MediaTypes() []mediatype.MediaType {
	return []mediatype.MediaType{mediatype.New("application", "msgpack")}
}

func (handler *msgpackCodec) Encode(writer io.Writer, content interface{}) error {
	if err := codec.NewEncoder(writer, handler.handle).Encode(content); err != nil {
		return xerrors.Errorf("msgpack encode: %w", err)
	}
	return nil
}

func (handler *msgpackCodec) Decode(
	reader io.Reader, contentReceiver interface{},
) error {
	if err := codec.NewDecoder(reader, handler.handle).Decode(contentReceiver); err != nil {
		return xerrors.Errorf("msgpack decode: %w", err)
	}
	return nil
}
