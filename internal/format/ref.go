package format

import "math/rand"

const (
	refAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	refLength   = 11
)

// newRef returns a snapshot node reference id of the form
// "ref-" followed by 11 lowercase alphanumeric characters.
func newRef() string {
	buf := make([]byte, refLength)
	for i := range buf {
		buf[i] = refAlphabet[rand.Intn(len(refAlphabet))]
	}
	return "ref-" + string(buf)
}
