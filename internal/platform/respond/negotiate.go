package respond

import (
	"strconv"
	"strings"
)

const (
	mediaJSON        = "application/json"
	mediaCBOR        = "application/cbor"
	mediaProblemJSON = "application/problem+json"
	mediaProblemCBOR = "application/problem+cbor"
)

type acceptRange struct {
	typ, subtype string
	q            float64
}

// score ranks how acceptable a concrete media type is. Fields compare in
// order: q-value, then how precisely the Accept range named it, then rank
// (problem+ types outrank their base types).
type score struct {
	q         float64
	precision int
	rank      int
}

func (s score) better(o score) bool {
	if s.q != o.q {
		return s.q > o.q
	}
	if s.precision != o.precision {
		return s.precision > o.precision
	}
	return s.rank > o.rank
}

func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(part, ";")
		full := strings.ToLower(strings.TrimSpace(params[0]))
		typ, subtype, ok := strings.Cut(full, "/")
		if !ok || typ == "" || subtype == "" {
			continue
		}
		r := acceptRange{typ: typ, subtype: subtype, q: 1}
		valid := true
		for _, p := range params[1:] {
			k, v, _ := strings.Cut(strings.TrimSpace(p), "=")
			if !strings.EqualFold(strings.TrimSpace(k), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || q < 0 || q > 1 {
				valid = false
				break
			}
			r.q = q
		}
		if valid {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// scoreFor finds the q-value the most precise matching range assigns to media.
// ok is false when no range matches or the match has q=0.
func scoreFor(ranges []acceptRange, media string, rank int) (score, bool) {
	typ, subtype, _ := strings.Cut(media, "/")
	best := score{q: -1, rank: rank}
	for _, r := range ranges {
		var precision int
		switch {
		case r.typ == typ && r.subtype == subtype:
			precision = 3
		case r.typ == typ && r.subtype == "*":
			precision = 2
		case r.typ == "*" && r.subtype == "*":
			precision = 1
		default:
			continue
		}
		if precision > best.precision {
			best.precision = precision
			best.q = r.q
		}
	}
	return best, best.q > 0
}

func bestOf(ranges []acceptRange, base, problem string) (score, bool) {
	b, bok := scoreFor(ranges, base, 1)
	p, pok := scoreFor(ranges, problem, 2)
	switch {
	case bok && pok:
		if p.better(b) {
			return p, true
		}
		return b, true
	case pok:
		return p, true
	default:
		return b, bok
	}
}

// acceptsCBOR reports whether the Accept header prefers CBOR over JSON.
// JSON wins ties and is the default for missing or unusable headers.
func acceptsCBOR(header string) bool {
	if strings.TrimSpace(header) == "" {
		return false
	}
	ranges := parseAccept(header)
	cb, cok := bestOf(ranges, mediaCBOR, mediaProblemCBOR)
	if !cok {
		return false
	}
	js, jok := bestOf(ranges, mediaJSON, mediaProblemJSON)
	return !jok || cb.better(js)
}
