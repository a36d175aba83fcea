package downstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

var errMalformedPage = errors.New("page envelope lacks content or totalElements")

// pageEnvelope detects missing required fields of a downstream page.
type pageEnvelope[T any] struct {
	Content          *[]T   `json:"content"`
	TotalElements    *int64 `json:"totalElements"`
	TotalPages       int    `json:"totalPages"`
	Number           int    `json:"number"`
	Size             int    `json:"size"`
	NumberOfElements int    `json:"numberOfElements"`
	First            bool   `json:"first"`
	Last             bool   `json:"last"`
	Empty            bool   `json:"empty"`
}

// fetchPage forwards the supplied page and size unchanged and returns the
// downstream envelope with its totalElements unchanged.
func fetchPage[T any](ctx context.Context, c *Client, q model.PageQuery) (*dto.Page[T], error) {
	query := url.Values{}
	if q.Page != nil {
		query.Set("page", strconv.Itoa(*q.Page))
	}
	if q.Size != nil {
		query.Set("size", strconv.Itoa(*q.Size))
	}

	var env pageEnvelope[T]
	if err := c.do(ctx, call{method: http.MethodGet, query: query}, &env); err != nil {
		return nil, err
	}
	if env.Content == nil || env.TotalElements == nil {
		return nil, &domainErrors.UpstreamError{Service: c.service, Err: errMalformedPage}
	}

	return &dto.Page[T]{
		Content:          *env.Content,
		TotalElements:    *env.TotalElements,
		TotalPages:       env.TotalPages,
		Number:           env.Number,
		Size:             env.Size,
		NumberOfElements: env.NumberOfElements,
		First:            env.First,
		Last:             env.Last,
		Empty:            env.Empty,
	}, nil
}
