package domain

import (
	"encoding/json"
	"strings"
)

// FreeSize is shown when an item carries no usable size data.
const FreeSize = "Free Size"

// RawSizes is the size field as it arrives from the items API: either a
// real list, or a string that may be comma separated or a serialized array.
type RawSizes struct {
	List      []string
	Delimited string
	IsList    bool
}

func SizeList(l []string) RawSizes { return RawSizes{List: l, IsList: true} }
func SizeString(s string) RawSizes { return RawSizes{Delimited: s} }

// NormalizeSizes turns any RawSizes into a non-empty list of labels.
// Feeding its result back as a SizeList returns it unchanged.
func NormalizeSizes(raw RawSizes) []string {
	if raw.IsList {
		if len(raw.List) > 0 {
			return raw.List
		}
		return []string{FreeSize}
	}

	s := strings.TrimSpace(raw.Delimited)
	var out []string
	if strings.HasPrefix(s, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			out = compact(parsed)
		} else {
			out = splitSizes(strings.Map(dropBracketsAndQuotes, s))
		}
	} else {
		out = splitSizes(s)
	}

	if len(out) == 0 {
		return []string{FreeSize}
	}
	return out
}

func dropBracketsAndQuotes(r rune) rune {
	switch r {
	case '[', ']', '"', '\'':
		return -1
	}
	return r
}

func splitSizes(s string) []string {
	if s == "" {
		return nil
	}
	return compact(strings.Split(s, ","))
}

func compact(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
