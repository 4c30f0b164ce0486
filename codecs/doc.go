// Codec registry and the negotiation algorithm over it.
/*
This package pairs an ordered, read-only Registry of codecs with the two
negotiation operations a body pipeline needs: picking a decoder from a
request's Content-Type and picking an encoder from its Accept header.

Specific objectives

1. Clients can send whichever supported serialization they like and request
back whichever encoding they are most comfortable with.

2. Handler code never calls a mimetype-specific method. Support for a new
content type is added once, by registering a codec, and every route gets it
for free.

3. Negotiation is deterministic. Quality weights come first, then pattern
specificity, then header position, then registration order -- two identical
requests against the same registry always pick the same codec.

4. Developers extend the set of supported content types by implementing the
Codec interface; the registry is the only extension point.
*/
package codecs
