// Typed request/response containers over negotiated body codecs.
/*
This package is the piece a hosting framework touches. FromRequest turns a
Content-Type header plus raw body bytes into a typed value; Responder turns
a value plus an Accept header into body bytes and the matching Content-Type.
Both consume the host through one-method header interfaces that http.Header
already satisfies, so no framework types leak in.

Everything here is request-scoped and synchronous. The registry and
responder are built once at startup and shared read-only; the only I/O is
the single body read the decode path performs, bounded by whatever timeout
and size limits the host applies to its readers.
*/
package media
