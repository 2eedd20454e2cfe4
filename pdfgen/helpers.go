package pdfgen

import (
	"fmt"
	"io"
	"os"
)

type countingWriter struct {
	w     io.Writer
	count int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.count += int64(n)
	return n, err
}

// lazyFile creates its file on the first write so a layout failure never
// leaves an empty file behind.
type lazyFile struct {
	path string
	file *os.File
}

func (lf *lazyFile) Write(p []byte) (int, error) {
	if lf.file == nil {
		f, err := os.Create(lf.path)
		if err != nil {
			return 0, err
		}
		lf.file = f
	}
	return lf.file.Write(p)
}

func (lf *lazyFile) Close() error {
	if lf.file == nil {
		return nil
	}
	err := lf.file.Close()
	lf.file = nil
	return err
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
