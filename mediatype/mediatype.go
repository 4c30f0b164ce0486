// Parsing and matching of media type identifiers.
package mediatype

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Wildcard is the token that matches any type or subtype field in a media
// range.
const Wildcard = "*"

// Param is a single media type parameter. Params preserve the order they
// appeared in on the wire.
type Param struct {
	Key   string
	Value string
}

/*
MediaType is a parsed type/subtype identifier with optional parameters:

	application/json
	text/plain; charset=utf-8
	application/*

Type or Subtype may be the Wildcard token when the value came from an Accept
header. Codecs advertise concrete types only -- wildcards belong to the
requesting side.
*/
type MediaType struct {
	Type    string
	Subtype string
	Params  []Param
}

// New builds a MediaType with no parameters.
func New(mainType string, subtype string) MediaType {
	return MediaType{
		Type:    strings.ToLower(mainType),
		Subtype: strings.ToLower(subtype),
	}
}

/*
Parse converts a raw media type value like "application/json; charset=utf-8"
into a MediaType. Type and subtype are lower-cased and whitespace-trimmed.
Parameters are parsed as semicolon-separated key=value pairs with keys
lower-cased; quoted-string values are unquoted.

An error is returned when the type/subtype pair is missing its '/' separator,
when either side of the pair is blank, or when a parameter is not a key=value
pair.
*/
func Parse(incoming string) (MediaType, error) {
	sections := splitUnquoted(incoming, ';')

	pair := strings.TrimSpace(sections[0])
	slash := strings.IndexByte(pair, '/')
	if slash < 0 {
		return MediaType{}, xerrors.Errorf(
			"media type '%v' is missing the '/' separator", incoming,
		)
	}

	mainType := strings.ToLower(strings.TrimSpace(pair[:slash]))
	subtype := strings.ToLower(strings.TrimSpace(pair[slash+1:]))
	if mainType == "" || subtype == "" {
		return MediaType{}, xerrors.Errorf(
			"media type '%v' has a blank type or subtype", incoming,
		)
	}

	mediaType := MediaType{Type: mainType, Subtype: subtype}

	for _, section := range sections[1:] {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		equals := strings.IndexByte(section, '=')
		if equals < 0 {
			return MediaType{}, xerrors.Errorf(
				"media type parameter '%v' is not a key=value pair", section,
			)
		}

		key := strings.ToLower(strings.TrimSpace(section[:equals]))
		if key == "" {
			return MediaType{}, xerrors.Errorf(
				"media type parameter '%v' has a blank key", section,
			)
		}

		value := unquote(strings.TrimSpace(section[equals+1:]))
		mediaType.Params = append(mediaType.Params, Param{Key: key, Value: value})
	}

	return mediaType, nil
}

// Param returns the value of the first parameter with the given key
// (case-insensitive) and whether it was present.
func (mediaType MediaType) Param(key string) (string, bool) {
	for _, param := range mediaType.Params {
		if strings.EqualFold(param.Key, key) {
			return param.Value, true
		}
	}
	return "", false
}

// IsConcrete reports whether neither type nor subtype is a wildcard.
func (mediaType MediaType) IsConcrete() bool {
	return mediaType.Type != Wildcard && mediaType.Subtype != Wildcard
}

/*
Matches reports whether this media type is matched by pattern. For each of
type and subtype the pattern's field must be the Wildcard token or equal this
value's field, ignoring case. Every parameter the pattern carries must be
present on this value with an equal (case-insensitive) value; parameters this
value carries beyond the pattern's are ignored.
*/
func (mediaType MediaType) Matches(pattern MediaType) bool {
	if pattern.Type != Wildcard && !strings.EqualFold(pattern.Type, mediaType.Type) {
		return false
	}
	if pattern.Subtype != Wildcard &&
		!strings.EqualFold(pattern.Subtype, mediaType.Subtype) {
		return false
	}

	for _, required := range pattern.Params {
		value, found := mediaType.Param(required.Key)
		if !found || !strings.EqualFold(value, required.Value) {
			return false
		}
	}

	return true
}

// Specificity ranks how narrow this media type is when used as a pattern:
// 0 for */*, 1 for type/*, 2 for type/subtype, plus 1 per parameter. Used
// only to break quality ties between Accept header entries.
func (mediaType MediaType) Specificity() int {
	rank := 0
	if mediaType.Type != Wildcard {
		rank++
	}
	if mediaType.Subtype != Wildcard {
		rank++
	}
	return rank + len(mediaType.Params)
}

// String renders the media type as a header value, quoting parameter values
// that need it.
func (mediaType MediaType) String() string {
	builder := strings.Builder{}
	builder.WriteString(mediaType.Type)
	builder.WriteByte('/')
	builder.WriteString(mediaType.Subtype)

	for _, param := range mediaType.Params {
		builder.WriteString("; ")
		builder.WriteString(param.Key)
		builder.WriteByte('=')
		if needsQuoting(param.Value) {
			builder.WriteString(strconv.Quote(param.Value))
		} else {
			builder.WriteString(param.Value)
		}
	}

	return builder.String()
}

// Splits on sep, ignoring separators inside double-quoted strings.
func splitUnquoted(value string, sep byte) []string {
	sections := make([]string, 0, 2)
	inQuotes := false
	escaped := false
	start := 0

	for index := 0; index < len(value); index++ {
		char := value[index]
		switch {
		case escaped:
			escaped = false
		case char == '\\' && inQuotes:
			escaped = true
		case char == '"':
			inQuotes = !inQuotes
		case char == sep && !inQuotes:
			sections = append(sections, value[start:index])
			start = index + 1
		}
	}

	return append(sections, value[start:])
}

// Strips surrounding double quotes and backslash escapes from a parameter
// value. Unquoted values pass through as-is.
func unquote(value string) string {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return value
	}

	inner := value[1 : len(value)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}

	builder := strings.Builder{}
	escaped := false
	for _, char := range inner {
		if !escaped && char == '\\' {
			escaped = true
			continue
		}
		escaped = false
		builder.WriteRune(char)
	}
	return builder.String()
}

func needsQuoting(value string) bool {
	if value == "" {
		return true
	}
	return strings.ContainsAny(value, "\t \";,=()<>@:/[]?{}\\")
}
