package codecs

import (
	"io"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Interface for defining a content codec. Implementations must be safe for
// concurrent use after construction.
type Codec interface {
	// MediaTypes returns the concrete media types this codec produces and
	// consumes, in preference order. Advertised types must not contain
	// wildcards -- wildcards belong to the requesting side only.
	MediaTypes() []mediatype.MediaType

	// Encode is expected to write the wire form of content to writer.
	Encode(writer io.Writer, content interface{}) error

	// Decode is expected to read wire content from reader and unmarshal it
	// into contentReceiver. Decode is all-or-nothing: on error the receiver
	// holds no usable value. Structural failures at a known location should
	// be reported as a rejections.FieldError so the boundary can name the
	// offending field path.
	Decode(reader io.Reader, contentReceiver interface{}) error
}
