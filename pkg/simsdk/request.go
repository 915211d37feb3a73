package simsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/simapi/pkg/httpx"
)

// NewRequest builds an authenticated API request for path, relative to
// {BaseURL}/{APIVersion}/. A fresh token is fetched first and any
// authentication error is returned unchanged. The payload is serialised as
// the JSON body for every method; nil becomes an empty object.
func (c *Client) NewRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	token, err := c.FetchToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := httpx.NewJSONRequest(ctx, method, c.apiURL(path), payload)
	if err != nil {
		return nil, err
	}

	// Host is derived from the URL by net/http (api.1nce.com for the default base URL)
	req.Header.Set("Authorization", token.Header())
	httpx.SetStandardHeaders(req)

	return req, nil
}

// do builds and sends an authenticated request.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) (*http.Response, error) {
	req, err := c.NewRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: req.URL.String(), Err: err}
	}

	c.logger(ctx).Debug("sim api call",
		"op", op,
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
	)
	return resp, nil
}

// getObject performs a GET and decodes a JSON object.
func (c *Client) getObject(ctx context.Context, op, path string) (Object, error) {
	var obj Object
	if err := c.get(ctx, op, path, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// getList performs a GET and decodes a JSON array of objects.
func (c *Client) getList(ctx context.Context, op, path string) ([]Object, error) {
	var list []Object
	if err := c.get(ctx, op, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) get(ctx context.Context, op, path string, target any) error {
	resp, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	body, err := httpx.ReadBody(resp)
	if err != nil {
		return err
	}

	if !httpx.IsSuccess(resp.StatusCode) {
		apiErr := &APIError{StatusCode: resp.StatusCode, Raw: body}
		// Best effort, the body is kept raw either way
		_ = decodeJSON(body, &apiErr.Body)
		return apiErr
	}

	if err := decodeJSON(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mutate sends a request whose answer is reduced to its status code. Any
// status the server answers with is returned without error.
func (c *Client) mutate(ctx context.Context, op, method, path string, payload any) (int, error) {
	resp, err := c.do(ctx, op, method, path, payload)
	if err != nil {
		return 0, err
	}
	httpx.DrainBody(resp)

	return resp.StatusCode, nil
}

// decodeJSON unmarshals body keeping numbers as json.Number.
func decodeJSON(body []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(target)
}
