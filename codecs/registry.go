package codecs

import (
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

// Candidate is one (codec, advertised media type) pair from the registry's
// flattened candidate list.
type Candidate struct {
	Codec     Codec
	MediaType mediatype.MediaType
}

/*
Registry is an ordered, read-only collection of codecs built once before
serving begins. Registration order is the tie-break of last resort during
negotiation: among codecs equally acceptable to a client, the one registered
earliest wins.

Because a Registry cannot be mutated after NewRegistry returns, it may be
shared by reference across arbitrarily many concurrent requests without
locking.
*/
type Registry struct {
	codecs     []Codec
	candidates []Candidate
	supported  []string
}

// NewRegistry builds a registry from codecs in registration order. Errors
// when no codecs are given or when a codec advertises a wildcard or empty
// media type list.
func NewRegistry(registered ...Codec) (*Registry, error) {
	if len(registered) == 0 {
		return nil, xerrors.New("a registry needs at least one codec")
	}

	registry := &Registry{codecs: registered}
	seen := make(map[string]bool)

	for _, thisCodec := range registered {
		advertised := thisCodec.MediaTypes()
		if len(advertised) == 0 {
			return nil, xerrors.New("codec advertises no media types")
		}

		for _, mediaType := range advertised {
			if !mediaType.IsConcrete() {
				return nil, xerrors.Errorf(
					"codec advertises wildcard media type '%v'", mediaType,
				)
			}

			registry.candidates = append(
				registry.candidates,
				Candidate{Codec: thisCodec, MediaType: mediaType},
			)

			rendered := mediaType.String()
			if !seen[rendered] {
				seen[rendered] = true
				registry.supported = append(registry.supported, rendered)
			}
		}
	}

	return registry, nil
}

// NewDefaultRegistry builds a registry with the JSON and form-urlencoded
// codecs, JSON first so it wins wildcard negotiation.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(NewJSONCodec(), NewFormCodec())
}

// FindDecoder returns the first-registered codec whose advertised types
// contain one matching contentType, with the codec's type acting as the
// pattern. Returns nil when no codec matches.
func (registry *Registry) FindDecoder(contentType mediatype.MediaType) Codec {
	for _, candidate := range registry.candidates {
		if contentType.Matches(candidate.MediaType) {
			return candidate.Codec
		}
	}
	return nil
}

// FindEncoder returns the first candidate whose advertised type matches
// pattern. Used for explicit output type lookups that bypass negotiation.
func (registry *Registry) FindEncoder(pattern mediatype.MediaType) (Candidate, bool) {
	for _, candidate := range registry.candidates {
		if candidate.MediaType.Matches(pattern) {
			return candidate, true
		}
	}
	return Candidate{}, false
}

// EncodeCandidates returns every (codec, advertised type) pair in
// registration order -- the candidate set negotiation ranks. The returned
// slice is shared and must not be modified.
func (registry *Registry) EncodeCandidates() []Candidate {
	return registry.candidates
}

// SupportedTypes returns the distinct advertised media types in registration
// order, rendered for rejection messages. The returned slice is shared and
// must not be modified.
func (registry *Registry) SupportedTypes() []string {
	return registry.supported
}
