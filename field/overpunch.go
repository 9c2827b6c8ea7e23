package field

// overpunch (signed-zone) table: the last character of a legacy numeric
// field carries both its final digit and its sign. Positive digits 0-9 map
// to '{' and 'A'..'I'; negative digits 0-9 map to '}' and 'J'..'R'.
var overpunchPositive = [10]byte{'{', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I'}
var overpunchNegative = [10]byte{'}', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R'}

// DecodeOverpunch maps a trailing signed-zone character to its digit and
// sign. ok is false if c isn't a recognized overpunch character, in which
// case the caller must leave the trailing character in place and apply no
// sign change.
func DecodeOverpunch(c byte) (digit int, sign int, ok bool) {
	for d, pc := range overpunchPositive {
		if pc == c {
			return d, 1, true
		}
	}
	for d, nc := range overpunchNegative {
		if nc == c {
			return d, -1, true
		}
	}
	return 0, 0, false
}

// EncodeOverpunch is the inverse of DecodeOverpunch. It exists to verify
// the decode/encode round trip in tests; the production decode path never
// needs to encode.
func EncodeOverpunch(digit int, sign int) (c byte, ok bool) {
	if digit < 0 || digit > 9 {
		return 0, false
	}
	if sign < 0 {
		return overpunchNegative[digit], true
	}
	return overpunchPositive[digit], true
}
