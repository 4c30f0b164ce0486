package media

import (
	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Response carries a value to encode plus, optionally, an explicit output
// media type that bypasses Accept negotiation. Constructed per response and
// consumed immediately by a Responder.
type Response struct {
	content   interface{}
	mediaType mediatype.MediaType
	explicit  bool
}

// NewResponse wraps a value with no explicit media type; the output type
// will be negotiated against the request's Accept header when the response
// is rendered.
func NewResponse(content interface{}) *Response {
	return &Response{content: content}
}

// Content returns the wrapped value.
func (response *Response) Content() interface{} {
	return response.content
}

// WithMediaType pins the output media type, skipping negotiation. Used when
// the caller already knows the client's capability.
func (response *Response) WithMediaType(mediaType mediatype.MediaType) *Response {
	response.mediaType = mediaType
	response.explicit = true
	return response
}

// WithMediaTypeString pins the output media type from a raw header value.
// A value that does not parse leaves the response on the negotiation path.
func (response *Response) WithMediaTypeString(value string) *Response {
	mediaType, err := mediatype.Parse(value)
	if err != nil {
		return response
	}
	return response.WithMediaType(mediaType)
}
