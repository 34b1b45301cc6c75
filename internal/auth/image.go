package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// maxImageBytes bounds profile pictures; everything is stored inline as a
// data URI, so oversized images would bloat every session read/write.
const maxImageBytes = 2 << 20

// ReadImageDataURI reads an image file and encodes it as a data URI, the
// form profile pictures are persisted in.
func ReadImageDataURI(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(b) > maxImageBytes {
		return "", fmt.Errorf("image too large: %d bytes (max %d)", len(b), maxImageBytes)
	}
	mime := http.DetectContentType(b)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
