package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/example/smartscale/internal/apperr"
)

// multipartOverhead is allowed on top of the payload limit for form framing.
const multipartOverhead = 1 << 20

type imagePayload struct {
	Image string `json:"image"`
}

// readImage extracts the uploaded image from a multipart "image" field or a
// JSON {"image": "<base64>"} body. Payloads over limit are rejected with 413,
// payloads that do not sniff as an image with 415.
func readImage(c *gin.Context, limit int64) ([]byte, error) {
	// base64 inflates by 4/3.
	bodyLimit := limit + limit/3 + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		return nil, apperr.TooLarge("image exceeds upload limit")
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	var (
		data []byte
		err  error
	)
	switch mediaType {
	case "multipart/form-data":
		data, err = readMultipartImage(c, limit)
	case "application/json":
		data, err = readJSONImage(c, limit)
	default:
		return nil, apperr.InvalidInput("No image provided")
	}
	if err != nil {
		return nil, err
	}

	if detected := mimetype.Detect(data); !strings.HasPrefix(detected.String(), "image/") {
		return nil, apperr.UnsupportedMedia("unsupported image type " + detected.String())
	}
	return data, nil
}

func readMultipartImage(c *gin.Context, limit int64) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if isTooLarge(err) {
			return nil, apperr.TooLarge("image exceeds upload limit")
		}
		return nil, apperr.InvalidInput("No image provided")
	}
	if file.Size > limit {
		return nil, apperr.TooLarge("image exceeds upload limit")
	}
	if declared := file.Header.Get("Content-Type"); declared != "" {
		mediaType, _, _ := mime.ParseMediaType(declared)
		if !strings.HasPrefix(mediaType, "image/") && mediaType != "application/octet-stream" {
			return nil, apperr.UnsupportedMedia("unsupported image type " + mediaType)
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperr.InvalidInput("unable to open image")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if int64(len(data)) > limit {
		return nil, apperr.TooLarge("image exceeds upload limit")
	}
	if len(data) == 0 {
		return nil, apperr.InvalidInput("No image provided")
	}
	return data, nil
}

func readJSONImage(c *gin.Context, limit int64) ([]byte, error) {
	var payload imagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		if isTooLarge(err) {
			return nil, apperr.TooLarge("image exceeds upload limit")
		}
		return nil, apperr.InvalidInput("invalid JSON body")
	}

	encoded := strings.TrimSpace(payload.Image)
	if strings.HasPrefix(encoded, "data:") {
		if idx := strings.Index(encoded, ","); idx >= 0 {
			encoded = encoded[idx+1:]
		}
	}
	if encoded == "" {
		return nil, apperr.InvalidInput("No image provided")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, apperr.InvalidInput("image must be base64 encoded")
	}
	if int64(len(data)) > limit {
		return nil, apperr.TooLarge("image exceeds upload limit")
	}
	return data, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
