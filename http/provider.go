package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Sampling settings shared by every provider.
const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 1024
)

// newJSONRequest builds a POST request with body encoded as JSON.
func newJSONRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// lookupText reads a non-empty string at path from a JSON body.
func lookupText(body []byte, path string) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	v := gjson.GetBytes(body, path)
	if v.Type != gjson.String {
		return "", false
	}
	if strings.TrimSpace(v.Str) == "" {
		return "", false
	}
	return v.Str, true
}

// joinURL appends path to base without doubling slashes.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
