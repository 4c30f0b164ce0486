package media

import (
	"bytes"
	"io"

	"github.com/illuscio-dev/anymedia-go/codecs"
	"github.com/illuscio-dev/anymedia-go/mediatype"
	"github.com/illuscio-dev/anymedia-go/rejections"
)

// Interface for objects that expose request headers, such as http.Header.
// Get is expected to return "" for absent headers. The engine only ever
// reads Content-Type and Accept.
type headerFetcher interface {
	Get(string) string
}

// Media owns a request body decoded into Content and the concrete media
// type that was used to decode it. Constructed per request and consumed
// immediately by the handler; it holds no shared state.
type Media[T any] struct {
	Content   T
	MediaType mediatype.MediaType
}

/*
FromRequest negotiates a decoder against the request's Content-Type header,
reads the body to completion, and decodes it into a value of type T.

The body is buffered before decoding so a transport failure surfaces as a
BodyReadError rather than being folded into the codec's diagnostic. A
structural decode failure surfaces as a DecodeError carrying the codec's own
diagnostic, with the offending field path when the codec reports one. Decode
is all-or-nothing: a rejection means no usable value.
*/
func FromRequest[T any](
	headers headerFetcher, body io.Reader, registry *codecs.Registry,
) (*Media[T], *rejections.Rejection) {
	decoder, contentType, rejection := codecs.NegotiateDecode(
		headers.Get("Content-Type"), registry,
	)
	if rejection != nil {
		return nil, rejection
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return nil, rejections.BodyReadError.New(
			"error reading request body: "+err.Error(), err,
		)
	}

	receiver := new(T)
	if err := decoder.Decode(bytes.NewReader(content), receiver); err != nil {
		return nil, rejections.NewDecode(err)
	}

	return &Media[T]{Content: *receiver, MediaType: contentType}, nil
}
