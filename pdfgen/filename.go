package pdfgen

import (
	"crypto/rand"
	"io"
	"math/big"
)

const randomNameBytes = 16

// RandomFilename returns a 128-bit random base-32 name with a .pdf extension.
func RandomFilename() (string, error) {
	return randomFilename(rand.Reader)
}

func randomFilename(src io.Reader) (string, error) {
	buf := make([]byte, randomNameBytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", NewError(KindInternal, "read random source", err)
	}
	return new(big.Int).SetBytes(buf).Text(32) + ".pdf", nil
}
