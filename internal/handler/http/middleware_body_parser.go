package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-bootstrap/internal/app"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// withBodyParsing prepares request bodies for controllers.
//
// gzip encoded bodies are inflated, and the inflated body is limited to
// Server.BodyLimit bytes. A JSON body must be a JSON object or array and is
// buffered so that controllers can read it again. A url-encoded form is
// parsed into r.PostForm. Any other body is passed on with the limit applied.
func (h *Handler) withBodyParsing(next http.Handler) http.Handler {
	limit := h.cfg.BodyLimit

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		if limit > 0 && r.ContentLength > limit {
			Fail(w, r, fmt.Errorf("%w: content length %d exceeds %d bytes", ErrBodyTooLarge, r.ContentLength, limit))
			return
		}

		if isGzipEncoded(r.Header.Get("Content-Encoding")) {
			body, err := newGzipBody(r.Body)
			if err != nil {
				Fail(w, r, fmt.Errorf("%w: invalid gzip data: %w", ErrMalformedBody, err))
				return
			}
			defer body.Close()

			r.Body = body
			r.ContentLength = -1
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
		}

		if limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		mediaType := mediaTypeOf(r)
		switch {
		case isJSONMediaType(mediaType):
			data, err := io.ReadAll(r.Body)
			if err != nil {
				Fail(w, r, bodyReadError(err))
				return
			}
			if err = checkJSON(data); err != nil {
				Fail(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(data))
			r.ContentLength = int64(len(data))
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				Fail(w, r, bodyReadError(err))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// DecodeJSON decodes the request body into v and validates the result
// against its `validate` struct tags.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return bodyReadError(err)
	}

	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// v is not a struct, there is nothing to validate
			return nil
		}
		return NewHTTPError(http.StatusBadRequest, app.MsgValidationFailed, err)
	}

	return nil
}

func bodyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// checkJSON accepts an empty body, a JSON object or a JSON array.
func checkJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return fmt.Errorf("%w: JSON body must be an object or an array", ErrMalformedBody)
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformedBody)
	}
	return nil
}

func mediaTypeOf(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isGzipEncoded(contentEncoding string) bool {
	return strings.EqualFold(strings.TrimSpace(contentEncoding), "gzip")
}
