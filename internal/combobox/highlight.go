package combobox

import "unicode"

// Segment is a piece of a label, either matching the query or not.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits label into segments, marking every case-insensitive
// occurrence of query.
func Highlight(label, query string) []Segment {
	if query == "" || label == "" {
		return []Segment{{Text: label}}
	}

	lr := []rune(label)
	qr := lowerRunes([]rune(query))
	ll := lowerRunes(lr)

	var segments []Segment
	start := 0
	for i := 0; i+len(qr) <= len(ll); {
		if !runesEqual(ll[i:i+len(qr)], qr) {
			i++
			continue
		}
		if i > start {
			segments = append(segments, Segment{Text: string(lr[start:i])})
		}
		segments = append(segments, Segment{Text: string(lr[i : i+len(qr)]), Match: true})
		i += len(qr)
		start = i
	}
	if start < len(lr) {
		segments = append(segments, Segment{Text: string(lr[start:])})
	}
	return segments
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
