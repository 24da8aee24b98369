package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// LooksLikeHTML reports a non-JSON body that starts with markup, typically a
// proxy or tunnel error page in front of the backend.
func (r *Response) LooksLikeHTML() bool {
	if len(r.Body) == 0 || r.IsJSON() {
		return false
	}

	return bytes.HasPrefix(bytes.TrimSpace(r.Body), []byte("<"))
}

// JSON decodes the body, returning nil for an empty or unparsable body.
func (r *Response) JSON() any {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil
	}

	return v
}

// ErrorMessage is the message to surface for a failed response.
func (r *Response) ErrorMessage() string {
	if msg, ok := ExtractMessage(r.JSON()); ok {
		return msg
	}

	return fmt.Sprintf("Request failed (%d)", r.StatusCode)
}

// ExtractMessage returns value.message when value is an object whose
// message is a string.
func ExtractMessage(value any) (string, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		return "", false
	}

	msg, ok := obj["message"].(string)
	return msg, ok
}

// ExtractOrders accepts either a bare array or a page object with a content
// array. Anything else yields an empty list.
func ExtractOrders(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case map[string]any:
		if content, ok := v["content"].([]any); ok {
			return content
		}
	}

	return []any{}
}
