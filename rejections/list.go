package rejections

// The request carries no Content-Type header, or one that cannot be parsed
// as a media type.
var MissingContentType = NewRejectionType(
	"MissingContentType",
	2000,
	415,
)

// The request's Content-Type names a media type no registered codec can
// decode.
var UnsupportedMediaType = NewRejectionType(
	"UnsupportedMediaType",
	2001,
	415,
)

// No registered codec produces a media type the request's Accept header
// allows with a quality above zero.
var NotAcceptable = NewRejectionType(
	"NotAcceptable",
	2002,
	406,
)

// The transport failed to deliver the request body.
var BodyReadError = NewRejectionType(
	"BodyReadError",
	2003,
	400,
)

// The selected codec could not decode the body into the target shape.
// Decode is all-or-nothing; no partial value is ever returned.
var DecodeError = NewRejectionType(
	"DecodeError",
	2004,
	400,
)

// The selected codec failed to encode the response value. A programming or
// data error, not a client error.
var EncodeError = NewRejectionType(
	"EncodeError",
	2005,
	500,
)

// List of the engine's built-in rejection kinds.
var RejectionList = [6]*RejectionType{
	MissingContentType,
	UnsupportedMediaType,
	NotAcceptable,
	BodyReadError,
	DecodeError,
	EncodeError,
}
