package sitegen

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
)

// CheckGzipSize reports the gzip-compressed size of the file at path. over
// is true when it exceeds threshold bytes; a zero threshold disables the
// check.
func CheckGzipSize(path string, threshold int) (msg string, over bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	if _, err := gz.Write(data); err != nil {
		return "", false, err
	}
	if err := gz.Close(); err != nil {
		return "", false, err
	}

	sizeKB := float64(gzBuf.Len()) / 1024
	msg = fmt.Sprintf("[Size] %s: compressed size is %.1fKB", path, sizeKB)
	if threshold > 0 && gzBuf.Len() > threshold {
		msg = fmt.Sprintf("[WARN] %s: compressed size is %.1fKB (> %.1fKB)", path, sizeKB, float64(threshold)/1024)
		return msg, true, nil
	}
	return msg, false, nil
}
