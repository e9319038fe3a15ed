package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
)

// MaxDocumentSize bounds the body read by Fetch.
const MaxDocumentSize = 1 << 20

// GetRawRecipe fetches the body at rawURL.
func GetRawRecipe(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", "glint-studio")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > MaxDocumentSize {
		return nil, fmt.Errorf("recipe at %s exceeds %d bytes", rawURL, MaxDocumentSize)
	}
	return body, nil
}

// Fetch retrieves a shared recipe. A URL whose fragment carries a share
// string is decoded without a request. Otherwise the body may be either a
// JSON document or a bare share string.
func Fetch(ctx context.Context, client *http.Client, rawURL string, reg *effects.Registry) (recipe.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return recipe.Document{}, fmt.Errorf("invalid recipe url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return recipe.Document{}, fmt.Errorf("unsupported recipe url scheme %q", u.Scheme)
	}
	if share, ok := strings.CutPrefix("#"+u.Fragment, recipe.SharePrefix); ok && share != "" {
		return recipe.DecodeShare(share, reg)
	}

	body, err := GetRawRecipe(ctx, client, rawURL)
	if err != nil {
		return recipe.Document{}, err
	}
	return Decode(body, reg)
}

// Decode accepts a JSON document or a share string.
func Decode(data []byte, reg *effects.Registry) (recipe.Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return recipe.DecodeDocument(data, reg)
	}
	return recipe.DecodeShare(string(data), reg)
}

// IsURL reports whether source should be retrieved with Fetch.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
