package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestExtractOrders(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{name: "bare array", input: decode(t, `[{"id":1},{"id":2}]`), expected: 2},
		{name: "page object", input: decode(t, `{"content":[{"id":1}],"totalElements":1}`), expected: 1},
		{name: "page without content", input: decode(t, `{"totalElements":0}`), expected: 0},
		{name: "content not an array", input: decode(t, `{"content":"nope"}`), expected: 0},
		{name: "nil", input: nil, expected: 0},
		{name: "string", input: "orders", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := ExtractOrders(tt.input)
			assert.NotNil(t, orders)
			assert.Len(t, orders, tt.expected)
		})
	}
}

func TestExtractMessage(t *testing.T) {
	msg, ok := ExtractMessage(decode(t, `{"message":"Bad credentials"}`))
	assert.True(t, ok)
	assert.Equal(t, "Bad credentials", msg)

	_, ok = ExtractMessage(decode(t, `{"message":42}`))
	assert.False(t, ok)

	_, ok = ExtractMessage(decode(t, `["message"]`))
	assert.False(t, ok)

	_, ok = ExtractMessage(nil)
	assert.False(t, ok)
}

func TestResponse_LooksLikeHTML(t *testing.T) {
	tests := []struct {
		name     string
		resp     Response
		expected bool
	}{
		{name: "html page", resp: Response{ContentType: "text/html", Body: []byte("  <!DOCTYPE html><html></html>")}, expected: true},
		{name: "no content type", resp: Response{Body: []byte("<html>")}, expected: true},
		{name: "json content type", resp: Response{ContentType: "application/json", Body: []byte("<html>")}, expected: false},
		{name: "plain text", resp: Response{ContentType: "text/plain", Body: []byte("error")}, expected: false},
		{name: "empty", resp: Response{ContentType: "text/html"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resp.LooksLikeHTML())
		})
	}
}

func TestResponse_JSONAndErrorMessage(t *testing.T) {
	invalid := Response{StatusCode: 500, Body: []byte("{oops")}
	assert.Nil(t, invalid.JSON())
	assert.Equal(t, "Request failed (500)", invalid.ErrorMessage())

	empty := Response{StatusCode: 404}
	assert.Nil(t, empty.JSON())
	assert.Equal(t, "Request failed (404)", empty.ErrorMessage())

	withMessage := Response{StatusCode: 400, Body: []byte(`{"message":"Email already used"}`)}
	assert.Equal(t, "Email already used", withMessage.ErrorMessage())
}
