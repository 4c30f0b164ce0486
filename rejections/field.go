package rejections

import (
	"fmt"

	"golang.org/x/xerrors"
)

// FieldError is returned by codec decode implementations to report a
// structural failure at a specific location in the source document, such as
// a JSON field path or a form key. Codecs that cannot locate a failure
// return a plain error instead.
type FieldError struct {
	// Location of the first offending field, in the codec's own path syntax.
	Path string

	// The codec's underlying diagnostic.
	Err error
}

func (fieldError *FieldError) Error() string {
	if fieldError.Path == "" {
		return fieldError.Err.Error()
	}
	return fmt.Sprintf("at '%v': %v", fieldError.Path, fieldError.Err)
}

func (fieldError *FieldError) Unwrap() error {
	return fieldError.Err
}

// NewDecode builds a DecodeError rejection from a codec diagnostic. When the
// codec reported a FieldError the rejection message names the offending
// field path.
func NewDecode(source error) *Rejection {
	fieldError := &FieldError{}
	if xerrors.As(source, &fieldError) && fieldError.Path != "" {
		return DecodeError.New(
			fmt.Sprintf(
				"cannot decode request body at '%v': %v",
				fieldError.Path,
				fieldError.Err,
			),
			source,
		)
	}

	return DecodeError.New("cannot decode request body: "+source.Error(), source)
}
