package codecs

import (
	"fmt"
	"strings"

	"github.com/illuscio-dev/anymedia-go/mediatype"
	"github.com/illuscio-dev/anymedia-go/rejections"
)

/*
NegotiateDecode selects the codec that should decode a request body from the
raw Content-Type header value. An empty header value means the header was
absent.

A pure function of its inputs: safe to call concurrently against a shared
registry.
*/
func NegotiateDecode(
	contentTypeHeader string, registry *Registry,
) (Codec, mediatype.MediaType, *rejections.Rejection) {
	if strings.TrimSpace(contentTypeHeader) == "" {
		return nil, mediatype.MediaType{}, rejections.MissingContentType.New(
			"request carries no Content-Type header", nil,
		)
	}

	contentType, err := mediatype.Parse(contentTypeHeader)
	if err != nil {
		return nil, mediatype.MediaType{}, rejections.MissingContentType.New(
			fmt.Sprintf("cannot parse Content-Type '%v'", contentTypeHeader),
			err,
		)
	}

	decoder := registry.FindDecoder(contentType)
	if decoder == nil {
		return nil, mediatype.MediaType{}, rejections.UnsupportedMediaType.New(
			fmt.Sprintf(
				"unsupported media type '%v'; supported: %v",
				contentType,
				strings.Join(registry.SupportedTypes(), ", "),
			),
			nil,
		)
	}

	return decoder, contentType, nil
}

// NegotiateEncode selects the codec and concrete media type for a response
// body from the raw Accept header value. An empty header value means the
// header was absent and is equivalent to */* with quality 1.0.
//
// Ranges are walked in the parser's order (quality desc, specificity desc,
// header position asc) and, within a range, candidates in registration
// order; the first candidate matching a range with quality above zero wins.
// That outer/inner loop IS the deterministic tie-break -- no further ranking
// happens here. Ranges are independent: a specific entry with quality 0
// does not veto a broader nonzero wildcard that also matches the same codec.
//
// A pure function of its inputs: safe to call concurrently against a shared
// registry.
func NegotiateEncode(
	acceptHeader string, registry *Registry,
) (Codec, mediatype.MediaType, *rejections.Rejection) {
	for _, acceptRange := range mediatype.ParseAccept(acceptHeader) {
		if acceptRange.Quality <= 0 {
			continue
		}

		for _, candidate := range registry.EncodeCandidates() {
			if candidate.MediaType.Matches(acceptRange.MediaType) {
				return candidate.Codec, candidate.MediaType, nil
			}
		}
	}

	return nil, mediatype.MediaType{}, rejections.NotAcceptable.New(
		fmt.Sprintf(
			"no acceptable media type for '%v'; produced: %v",
			acceptHeader,
			strings.Join(registry.SupportedTypes(), ", "),
		),
		nil,
	)
}
