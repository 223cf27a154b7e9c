package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
)

// maxUploadBytes caps how much of an uploaded file is read into memory.
const maxUploadBytes = 15 << 20 // 15MB

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
