package media

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/illuscio-dev/anymedia-go/codecs"
	"github.com/illuscio-dev/anymedia-go/mediatype"
	"github.com/illuscio-dev/anymedia-go/rejections"
)

// Content type of the plain-text bodies rejections are rendered with.
const rejectionContentType = "text/plain; charset=utf-8"

// Responder renders negotiated responses against a fixed codec registry.
// Immutable after construction and safe for concurrent use across requests.
type Responder struct {
	registry *codecs.Registry
	logger   *zap.Logger
}

// NewResponder builds a responder over registry. logger receives the
// operator-facing detail of encode failures; pass nil to discard it.
func NewResponder(registry *codecs.Registry, logger *zap.Logger) *Responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{registry: registry, logger: logger}
}

/*
IntoResponse resolves the output codec for response -- by explicit media
type lookup when one was pinned, otherwise by negotiating the request's
Accept header -- and encodes the content. Returns the body bytes and the
Content-Type header value to send with them.

A pinned media type no registered codec produces rejects as NotAcceptable.
An encode failure rejects as EncodeError: a programming or data error the
boundary must map to a 500-class response, never echoed to the client.
*/
func (responder *Responder) IntoResponse(
	headers headerFetcher, response *Response,
) ([]byte, string, *rejections.Rejection) {
	var encoder codecs.Codec
	var outType mediatype.MediaType

	if response.explicit {
		candidate, found := responder.registry.FindEncoder(response.mediaType)
		if !found {
			return nil, "", rejections.NotAcceptable.New(
				fmt.Sprintf(
					"no codec produces '%v'; produced: %v",
					response.mediaType,
					strings.Join(responder.registry.SupportedTypes(), ", "),
				),
				nil,
			)
		}

		encoder = candidate.Codec
		// A concrete pinned type is echoed verbatim so callers can carry
		// parameters like charset; a pinned pattern falls back to the
		// matching advertised type.
		if response.mediaType.IsConcrete() {
			outType = response.mediaType
		} else {
			outType = candidate.MediaType
		}
	} else {
		var rejection *rejections.Rejection
		encoder, outType, rejection = codecs.NegotiateEncode(
			headers.Get("Accept"), responder.registry,
		)
		if rejection != nil {
			return nil, "", rejection
		}
	}

	buffer := &bytes.Buffer{}
	if err := encoder.Encode(buffer, response.content); err != nil {
		return nil, "", rejections.EncodeError.New(
			"error encoding response body", err,
		)
	}

	return buffer.Bytes(), outType.String(), nil
}

// Render converts a response into the boundary triple of HTTP status code,
// body bytes, and Content-Type header value, mapping rejections to their
// status codes.
func (responder *Responder) Render(
	headers headerFetcher, response *Response,
) (int, []byte, string) {
	body, contentType, rejection := responder.IntoResponse(headers, response)
	if rejection != nil {
		return responder.RenderRejection(rejection)
	}
	return http.StatusOK, body, contentType
}

// RenderRejection converts a rejection from either the decode or encode
// path into the boundary triple. 4xx details name what was sent and what is
// supported and are safe to echo; 500-class details go to the operator log
// and the client gets a generic body.
func (responder *Responder) RenderRejection(
	rejection *rejections.Rejection,
) (int, []byte, string) {
	status := rejection.HTTPCode()

	if status >= http.StatusInternalServerError {
		responder.logger.Error(
			"response encoding failed",
			zap.String("rejection", rejection.Name()),
			zap.String("rejectionId", rejection.ID.String()),
			zap.String("detail", rejection.LogMessage()),
		)
		return status, []byte("internal server error"), rejectionContentType
	}

	return status, []byte(rejection.Message), rejectionContentType
}
