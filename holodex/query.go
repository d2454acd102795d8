package holodex

import (
	"strconv"
	"strings"
)

// queryValue is one rendered query-string field. Options types build an
// ordered slice of these in declaration order; encodeQuery joins them.
// An absent field is skipped entirely, which is different from a present
// field with an empty value: the remote API treats "key=" as a set filter.
type queryValue struct {
	name   string
	absent bool
	list   bool
	scalar string
	items  []string
}

// qString renders a required string field. Empty strings are still emitted.
func qString(name, v string) queryValue {
	return queryValue{name: name, scalar: v}
}

// qOptString renders an optional string field, skipped when nil.
func qOptString(name string, v *string) queryValue {
	if v == nil {
		return queryValue{name: name, absent: true}
	}
	return queryValue{name: name, scalar: *v}
}

// qInt renders an integer field.
func qInt(name string, v int) queryValue {
	return queryValue{name: name, scalar: strconv.Itoa(v)}
}

// qOptInt renders an optional integer field, skipped when nil.
func qOptInt(name string, v *int) queryValue {
	if v == nil {
		return queryValue{name: name, absent: true}
	}
	return queryValue{name: name, scalar: strconv.Itoa(*v)}
}

// qBool renders a boolean field as "true"/"false".
func qBool(name string, v bool) queryValue {
	return queryValue{name: name, scalar: strconv.FormatBool(v)}
}

// qEnum renders an enum-typed field by its symbolic name; the zero value
// means the caller left the filter unset.
func qEnum[E ~string](name string, v E) queryValue {
	if v == "" {
		return queryValue{name: name, absent: true}
	}
	return queryValue{name: name, scalar: string(v)}
}

// qList renders a sequence field as comma-joined elements. A nil slice is
// an absent optional; an empty non-nil slice is emitted as "key=".
func qList[E ~string](name string, v []E) queryValue {
	if v == nil {
		return queryValue{name: name, absent: true}
	}
	items := make([]string, len(v))
	for i, e := range v {
		items[i] = string(e)
	}
	return queryValue{name: name, list: true, items: items}
}

// encodeQuery renders fields in the given order with exactly one '&'
// between consecutive emitted fields.
func encodeQuery(fields []queryValue) string {
	var sb strings.Builder
	first := true
	for _, f := range fields {
		if f.absent {
			continue
		}
		if !first {
			sb.WriteByte('&')
		}
		first = false
		sb.WriteString(percentEncode(f.name))
		sb.WriteByte('=')
		if f.list {
			for i, item := range f.items {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(percentEncode(item))
			}
		} else {
			sb.WriteString(percentEncode(f.scalar))
		}
	}
	return sb.String()
}

// percentEncode escapes everything outside the RFC 3986 unreserved set,
// byte by byte, so multi-byte UTF-8 sequences come out as one %XX per byte.
// url.QueryEscape is not used here: it renders space as '+', and
// url.Values.Encode sorts keys, losing declaration order.
func percentEncode(s string) string {
	const upperhex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
