package mediatype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illuscio-dev/anymedia-go/mediatype"
)

func rangeTypes(ranges []mediatype.Range) []string {
	types := make([]string, len(ranges))
	for index, thisRange := range ranges {
		types[index] = thisRange.MediaType.String()
	}
	return types
}

func TestParseAcceptEmpty(test *testing.T) {
	for _, header := range []string{"", "   "} {
		test.Run("'"+header+"'", func(subTest *testing.T) {
			assert := assert.New(subTest)

			ranges := mediatype.ParseAccept(header)

			require.Len(subTest, ranges, 1)
			assert.Equal("*/*", ranges[0].MediaType.String())
			assert.Equal(1.0, ranges[0].Quality)
		})
	}
}

func TestParseAcceptQualityOrdering(test *testing.T) {
	assert := assert.New(test)

	ranges := mediatype.ParseAccept(
		"text/html;q=0.5, application/json, application/yaml;q=0.9",
	)

	assert.Equal(
		[]string{"application/json", "application/yaml", "text/html"},
		rangeTypes(ranges),
	)
	assert.Equal(1.0, ranges[0].Quality)
	assert.Equal(0.9, ranges[1].Quality)
	assert.Equal(0.5, ranges[2].Quality)
}

func TestParseAcceptSpecificityOrdering(test *testing.T) {
	assert := assert.New(test)

	// Equal quality: narrower patterns come first regardless of position.
	ranges := mediatype.ParseAccept(
		"*/*, application/json;charset=utf-8, text/*, application/json",
	)

	assert.Equal(
		[]string{
			"application/json; charset=utf-8",
			"application/json",
			"text/*",
			"*/*",
		},
		rangeTypes(ranges),
	)
}

func TestParseAcceptPositionStability(test *testing.T) {
	assert := assert.New(test)

	// Equal quality and specificity: original header order is kept.
	ranges := mediatype.ParseAccept("application/yaml, application/json")

	assert.Equal(
		[]string{"application/yaml", "application/json"},
		rangeTypes(ranges),
	)
}

func TestParseAcceptQualityDefaults(test *testing.T) {
	assert := assert.New(test)

	ranges := mediatype.ParseAccept("application/json")

	require.Len(test, ranges, 1)
	assert.Equal(1.0, ranges[0].Quality)
}

func TestParseAcceptZeroQualityKept(test *testing.T) {
	assert := assert.New(test)

	// q=0 entries parse (a caller must see them as "not acceptable"); they
	// sort last.
	ranges := mediatype.ParseAccept("application/json;q=0, text/plain;q=0.1")

	require.Len(test, ranges, 2)
	assert.Equal("text/plain", ranges[0].MediaType.String())
	assert.Equal(0.0, ranges[1].Quality)
}

func TestParseAcceptDropsBadEntries(test *testing.T) {
	cases := []struct {
		Name     string
		Header   string
		Expected []string
	}{
		{
			Name:     "QualityAboveOne",
			Header:   "application/json;q=2, text/plain",
			Expected: []string{"text/plain"},
		},
		{
			Name:     "QualityBelowZero",
			Header:   "application/json;q=-0.5, text/plain",
			Expected: []string{"text/plain"},
		},
		{
			Name:     "QualityNotNumeric",
			Header:   "application/json;q=high, text/plain",
			Expected: []string{"text/plain"},
		},
		{
			Name:     "MalformedType",
			Header:   "not-a-type, text/plain",
			Expected: []string{"text/plain"},
		},
		{
			Name:     "EmptyElements",
			Header:   ", text/plain,",
			Expected: []string{"text/plain"},
		},
		{
			Name:     "EverythingDropped",
			Header:   "bogus;q=nope",
			Expected: []string{},
		},
	}

	for _, thisCase := range cases {
		test.Run(thisCase.Name, func(subTest *testing.T) {
			ranges := mediatype.ParseAccept(thisCase.Header)
			assert.Equal(subTest, thisCase.Expected, rangeTypes(ranges))
		})
	}
}

func TestParseAcceptQuotedComma(test *testing.T) {
	assert := assert.New(test)

	ranges := mediatype.ParseAccept(
		`text/plain;note="a,b", application/json;q=0.5`,
	)

	require.Len(test, ranges, 2)
	assert.Equal(`text/plain; note="a,b"`, ranges[0].MediaType.String())
	assert.Equal("application/json", ranges[1].MediaType.String())
}

func TestParseAcceptExtensionsDiscarded(test *testing.T) {
	assert := assert.New(test)

	// Parameters after q are accept extensions, not media type parameters.
	ranges := mediatype.ParseAccept("text/plain;charset=utf-8;q=0.5;ext=1")

	require.Len(test, ranges, 1)
	assert.Equal("text/plain; charset=utf-8", ranges[0].MediaType.String())
	assert.Equal(0.5, ranges[0].Quality)
}

// The ordering invariant, checked pairwise over a spread of headers: quality
// descends, and within equal quality specificity descends.
func TestParseAcceptSortInvariant(test *testing.T) {
	headers := []string{
		"text/html, application/xhtml+xml, application/xml;q=0.9, */*;q=0.8",
		"application/json;q=0.2, */*, text/*;q=0.2, application/yaml",
		"a/b;q=0.1, c/d;q=0.9, e/*;q=0.9, */*;q=0.9, f/g",
		"text/plain;charset=utf-8;q=0.5, text/plain;q=0.5, text/*;q=0.5",
	}

	for _, header := range headers {
		test.Run(header, func(subTest *testing.T) {
			ranges := mediatype.ParseAccept(header)
			require.NotEmpty(subTest, ranges)

			for index := 1; index < len(ranges); index++ {
				previous, current := ranges[index-1], ranges[index]

				assert.GreaterOrEqual(
					subTest, previous.Quality, current.Quality,
					"quality must descend",
				)
				if previous.Quality == current.Quality {
					assert.GreaterOrEqual(
						subTest,
						previous.MediaType.Specificity(),
						current.MediaType.Specificity(),
						"specificity must descend within equal quality",
					)
				}
			}
		})
	}
}
