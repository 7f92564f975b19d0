package museumapi

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/repository"
)

// ListVeterans returns every veteran in API order.
func (c *Client) ListVeterans(ctx context.Context) ([]*entity.Veteran, error) {
	var resp []veteranResponse
	if err := c.do(ctx, call{op: "list_veterans", method: http.MethodGet, path: "/veterans", out: &resp}); err != nil {
		return nil, err
	}
	out := make([]*entity.Veteran, 0, len(resp))
	for i := range resp {
		out = append(out, resp[i].toEntity())
	}
	return out, nil
}

// GetVeteran returns one veteran or an error wrapping ErrNotFound.
func (c *Client) GetVeteran(ctx context.Context, id string) (*entity.Veteran, error) {
	var resp veteranResponse
	if err := c.do(ctx, call{op: "get_veteran", method: http.MethodGet, path: "/veterans/" + url.PathEscape(id), out: &resp}); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// CreateVeteran stores a new veteran and returns it as the API saw it.
func (c *Client) CreateVeteran(ctx context.Context, v *entity.Veteran) (*entity.Veteran, error) {
	var resp veteranResponse
	err := c.do(ctx, call{
		op: "create_veteran", method: http.MethodPost, path: "/veterans",
		body: newVeteranRequest(v), out: &resp, authed: true,
	})
	if err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return v, nil
	}
	return resp.toEntity(), nil
}

// UpdateVeteran replaces the veteran with v.ID.
func (c *Client) UpdateVeteran(ctx context.Context, v *entity.Veteran) error {
	return c.do(ctx, call{
		op: "update_veteran", method: http.MethodPut, path: "/veterans/" + url.PathEscape(v.ID),
		body: newVeteranRequest(v), authed: true,
	})
}

// DeleteVeteran removes the veteran with id.
func (c *Client) DeleteVeteran(ctx context.Context, id string) error {
	return c.do(ctx, call{op: "delete_veteran", method: http.MethodDelete, path: "/veterans/" + url.PathEscape(id), authed: true})
}

// ListNews returns every news item in API order.
func (c *Client) ListNews(ctx context.Context) ([]*entity.News, error) {
	var resp []newsResponse
	if err := c.do(ctx, call{op: "list_news", method: http.MethodGet, path: "/news", out: &resp}); err != nil {
		return nil, err
	}
	out := make([]*entity.News, 0, len(resp))
	for i := range resp {
		out = append(out, resp[i].toEntity())
	}
	return out, nil
}

// GetNews returns one news item or an error wrapping ErrNotFound.
func (c *Client) GetNews(ctx context.Context, id string) (*entity.News, error) {
	var resp newsResponse
	if err := c.do(ctx, call{op: "get_news", method: http.MethodGet, path: "/news/" + url.PathEscape(id), out: &resp}); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// CreateNews publishes a news item.
func (c *Client) CreateNews(ctx context.Context, n *entity.News) (*entity.News, error) {
	var resp newsResponse
	err := c.do(ctx, call{
		op: "create_news", method: http.MethodPost, path: "/news",
		body: newNewsRequest(n), out: &resp, authed: true,
	})
	if err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return n, nil
	}
	return resp.toEntity(), nil
}

// UpdateNews replaces the news item with n.ID.
func (c *Client) UpdateNews(ctx context.Context, n *entity.News) error {
	return c.do(ctx, call{
		op: "update_news", method: http.MethodPut, path: "/news/" + url.PathEscape(n.ID),
		body: newNewsRequest(n), authed: true,
	})
}

// DeleteNews removes the news item with id.
func (c *Client) DeleteNews(ctx context.Context, id string) error {
	return c.do(ctx, call{op: "delete_news", method: http.MethodDelete, path: "/news/" + url.PathEscape(id), authed: true})
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, call{
		op: "login", method: http.MethodPost, path: "/auth/login",
		body: loginRequest{Email: strings.TrimSpace(email), Password: password}, out: &resp,
	})
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrMissingToken
	}
	return resp.AccessToken, nil
}

// Ping checks that the API answers a cheap read. It is not retried.
func (c *Client) Ping(ctx context.Context) error {
	return c.attempt(ctx, call{op: "ping", method: http.MethodGet, path: "/news"})
}

func sortedFields(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var (
	_ repository.VeteranRepository = (*Client)(nil)
	_ repository.NewsRepository    = (*Client)(nil)
	_ repository.Authenticator     = (*Client)(nil)
	_ repository.Pinger            = (*Client)(nil)
)
