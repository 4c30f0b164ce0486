package rejections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/anymedia-go/rejections"
)

func TestHTTPCodes(test *testing.T) {
	cases := []struct {
		RejectionType *rejections.RejectionType
		Expected      int
	}{
		{rejections.MissingContentType, 415},
		{rejections.UnsupportedMediaType, 415},
		{rejections.NotAcceptable, 406},
		{rejections.BodyReadError, 400},
		{rejections.DecodeError, 400},
		{rejections.EncodeError, 500},
	}

	for _, thisCase := range cases {
		test.Run(thisCase.RejectionType.Name(), func(subTest *testing.T) {
			assert.Equal(
				subTest, thisCase.Expected, thisCase.RejectionType.HTTPCode(),
			)
		})
	}
}

func TestRejectionError(test *testing.T) {
	assert := assert.New(test)

	rejection := rejections.NotAcceptable.New("nothing matched", nil)

	assert.Equal("NotAcceptable (2002) - nothing matched", rejection.Error())
	assert.True(rejection.IsType(rejections.NotAcceptable))
	assert.False(rejection.IsType(rejections.DecodeError))
}

func TestRejectionUnwrap(test *testing.T) {
	assert := assert.New(test)

	source := xerrors.New("underlying codec diagnostic")
	rejection := rejections.DecodeError.New("decode failed", source)

	assert.True(xerrors.Is(rejection, source))
}

func TestRejectionIDsUnique(test *testing.T) {
	first := rejections.NotAcceptable.New("one", nil)
	second := rejections.NotAcceptable.New("two", nil)

	assert.NotEqual(test, first.ID, second.ID)
}

func TestLogMessageCarriesSource(test *testing.T) {
	assert := assert.New(test)

	source := xerrors.New("secret operator detail")
	rejection := rejections.EncodeError.New("error encoding response", source)

	assert.Contains(rejection.LogMessage(), "secret operator detail")
	assert.NotContains(rejection.Message, "secret operator detail")
}

func TestFieldError(test *testing.T) {
	assert := assert.New(test)

	source := xerrors.New("cannot unmarshal string into int")

	withPath := &rejections.FieldError{Path: "count", Err: source}
	assert.Contains(withPath.Error(), "count")
	assert.True(xerrors.Is(withPath, source))

	withoutPath := &rejections.FieldError{Err: source}
	assert.Equal(source.Error(), withoutPath.Error())
}

func TestNewDecode(test *testing.T) {
	test.Run("NamesFieldPath", func(subTest *testing.T) {
		assert := assert.New(subTest)

		source := &rejections.FieldError{
			Path: "count",
			Err:  xerrors.New("cannot unmarshal string into int"),
		}
		rejection := rejections.NewDecode(source)

		require.True(subTest, rejection.IsType(rejections.DecodeError))
		assert.Contains(rejection.Message, "'count'")
	})

	test.Run("PlainDiagnostic", func(subTest *testing.T) {
		assert := assert.New(subTest)

		rejection := rejections.NewDecode(xerrors.New("malformed document"))

		require.True(subTest, rejection.IsType(rejections.DecodeError))
		assert.Contains(rejection.Message, "malformed document")
	})
}
