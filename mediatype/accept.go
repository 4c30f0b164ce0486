package mediatype

import (
	"sort"
	"strconv"
	"strings"
)

// Range is one weighted media range parsed from an Accept header. Quality
// defaults to 1.0 when the entry carries no q parameter. A Range with
// Quality 0 marks its media type as explicitly not acceptable.
type Range struct {
	MediaType MediaType
	Quality   float64
}

// ParseAccept converts a raw Accept header value into weighted media ranges
// ordered by descending quality, then descending specificity, then original
// header position. That ordering is final -- negotiation consumes it
// directly without re-sorting.
//
// The header is split on commas outside quoted parameter values. A single
// entry that fails to parse, or whose q parameter is non-numeric or outside
// [0,1], is dropped without rejecting the rest of the header. Parameters
// after q are accept extensions and are not part of the entry's media type.
//
// An empty or absent header means "no preference" and yields the single
// implicit range */* with quality 1.0.
func ParseAccept(header string) []Range {
	if strings.TrimSpace(header) == "" {
		return []Range{{
			MediaType: MediaType{Type: Wildcard, Subtype: Wildcard},
			Quality:   1.0,
		}}
	}

	entries := splitUnquoted(header, ',')
	ranges := make([]Range, 0, len(entries))

	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		mediaType, err := Parse(entry)
		if err != nil {
			// One bad entry never rejects the whole header.
			continue
		}

		quality, ok := extractQuality(&mediaType)
		if !ok {
			continue
		}

		ranges = append(ranges, Range{MediaType: mediaType, Quality: quality})
	}

	// Stable sort keeps equal entries in header position order.
	sort.SliceStable(ranges, func(left int, right int) bool {
		if ranges[left].Quality != ranges[right].Quality {
			return ranges[left].Quality > ranges[right].Quality
		}
		return ranges[left].MediaType.Specificity() >
			ranges[right].MediaType.Specificity()
	})

	return ranges
}

// Pulls the q parameter out of a parsed Accept entry, truncating the
// parameter list at q so accept extensions don't count toward matching or
// specificity. Reports ok=false for a malformed or out-of-range q.
func extractQuality(mediaType *MediaType) (float64, bool) {
	for index, param := range mediaType.Params {
		if param.Key != "q" {
			continue
		}

		mediaType.Params = mediaType.Params[:index]

		quality, err := strconv.ParseFloat(param.Value, 64)
		if err != nil || quality < 0 || quality > 1 {
			return 0, false
		}
		return quality, true
	}

	return 1.0, true
}
