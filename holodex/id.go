package holodex

import "fmt"

// ID is a 16-byte identifier carried on the wire as dashed hex in the
// 8-4-4-4-12 layout, e.g. "123e4567-e89b-12d3-a456-426614174000".
// Holodex API keys use this format.
type ID [16]byte

// idDashes marks the dash positions within the 36-character text form.
var idDashes = [4]int{8, 13, 18, 23}

// ParseID parses a dashed-hex identifier. Unlike general-purpose UUID
// parsers it accepts exactly one form: 36 characters, dashes at fixed
// positions, hex digits everywhere else. Upper and lower case hex are both
// accepted; String always renders lower case.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != 36 {
		return id, &InvalidIDError{Value: s, Reason: fmt.Sprintf("length %d, want 36", len(s))}
	}
	for _, pos := range idDashes {
		if s[pos] != '-' {
			return id, &InvalidIDError{Value: s, Reason: fmt.Sprintf("expected dash at position %d", pos)}
		}
	}
	j := 0
	for i := 0; i < 36; {
		switch i {
		case idDashes[0], idDashes[1], idDashes[2], idDashes[3]:
			i++
			continue
		}
		hi, ok1 := hexNibble(s[i])
		lo, ok2 := hexNibble(s[i+1])
		if !ok1 || !ok2 {
			return id, &InvalidIDError{Value: s, Reason: fmt.Sprintf("non-hex digit at position %d", i)}
		}
		id[j] = hi<<4 | lo
		j++
		i += 2
	}
	return id, nil
}

// String renders the identifier in its canonical lower-case dashed form.
func (id ID) String() string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 36)
	j := 0
	for i := 0; i < 16; i++ {
		buf[j] = hexdigits[id[i]>>4]
		buf[j+1] = hexdigits[id[i]&0x0f]
		j += 2
		if j == 8 || j == 13 || j == 18 || j == 23 {
			buf[j] = '-'
			j++
		}
	}
	return string(buf)
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
