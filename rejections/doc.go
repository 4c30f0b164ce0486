/*
Rejection model definition and the engine's built-in rejection kinds.

Negotiation failures are values, not panics. This package defines two main
objects for handling them:

• RejectionType defines a kind of failure and the HTTP status it maps to.

• Rejection is an instance of a failure which contains a RejectionType.

Default RejectionType Variables

Pointers to the built-in kind definitions are included in this package; see
RejectionList.
*/
package rejections
