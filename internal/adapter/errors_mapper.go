package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-relief-sync/models"
)

// maxErrorBody caps the response text kept in a StatusError.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return &StatusError{Code: code, Body: body}
}

// mapTransportError classifies an error returned before any response.
// Caller cancellation is passed through unchanged.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// checkEnvelope inspects an optional {success, message} envelope.
// With required set, a body without success:true is an error; otherwise an
// empty or envelope-less body is accepted.
func checkEnvelope(body []byte, required bool) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		if required {
			return fmt.Errorf("%w: empty body", ErrDecode)
		}
		return nil
	}

	var env struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		if required {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil
	}

	switch {
	case env.Success == nil && required:
		return fmt.Errorf("%w: missing success flag", ErrDecode)
	case env.Success != nil && !*env.Success:
		return rejected(env.Message)
	}
	return nil
}

func rejected(message string) error {
	if message == "" {
		return ErrRejected
	}
	return fmt.Errorf("%w: %s", ErrRejected, message)
}

// acceptCollection validates an envelope and decodes its collection field.
// The field must be present and a JSON array; null counts as missing.
func acceptCollection[T any](env models.Envelope, raw json.RawMessage, field string) ([]T, error) {
	if !env.Success {
		return nil, rejected(env.Message)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: %q is not an array", ErrDecode, field)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, field, err)
	}
	return items, nil
}
