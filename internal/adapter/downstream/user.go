package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
)

var errNotArray = errors.New("user list is not a JSON array")

// UserClient calls the user service. Users are passed through as raw JSON.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) List(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := u.c.do(ctx, call{method: http.MethodGet}, &out); err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(out), []byte("[")) {
		return nil, &domainErrors.UpstreamError{Service: u.c.service, Err: errNotArray}
	}
	return out, nil
}

// Get reads a user through the service's admin view.
func (u *UserClient) Get(ctx context.Context, userID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := u.c.do(ctx, call{method: http.MethodGet, path: []string{"admin", id(userID)}, entity: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *UserClient) Delete(ctx context.Context, userID int64) error {
	return u.c.do(ctx, call{method: http.MethodDelete, path: []string{id(userID)}, entity: true}, nil)
}

func (u *UserClient) Total(ctx context.Context) (int64, error) {
	var total int64
	if err := u.c.do(ctx, call{method: http.MethodGet, path: []string{"totalusers"}}, &total); err != nil {
		return 0, err
	}
	return total, nil
}
