package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cineseat/booking-gateway/internal/model"
)

// Back-office write operations.  All of them require an ADMIN token;
// the upstream API enforces the role, the gateway's router gates the
// routes as well.

// CreateSession creates a session, optionally with a periodic
// configuration the upstream expands into concrete occurrences.
func (c *Client) CreateSession(ctx context.Context, token string, s model.Session) (model.Session, error) {
	var out model.Session
	err := c.do(ctx, http.MethodPost, "/sessions", nil, token, s, &out)
	return out, err
}

// UpdateSession replaces an existing session.
func (c *Client) UpdateSession(ctx context.Context, token string, s model.Session) (model.Session, error) {
	var out model.Session
	err := c.do(ctx, http.MethodPut, "/sessions/"+url.PathEscape(s.ID), nil, token, s, &out)
	return out, err
}

// DeleteSession removes a session.
func (c *Client) DeleteSession(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(id), nil, token, nil, nil)
}

// CreateHall creates a hall.
func (c *Client) CreateHall(ctx context.Context, token string, h model.Hall) (model.Hall, error) {
	var out model.Hall
	err := c.do(ctx, http.MethodPost, "/halls", nil, token, h, &out)
	return out, err
}

// UpdateHall replaces an existing hall.
func (c *Client) UpdateHall(ctx context.Context, token string, h model.Hall) (model.Hall, error) {
	var out model.Hall
	err := c.do(ctx, http.MethodPut, "/halls/"+url.PathEscape(h.ID), nil, token, h, &out)
	return out, err
}

// DeleteHall removes a hall.
func (c *Client) DeleteHall(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/halls/"+url.PathEscape(id), nil, token, nil, nil)
}

// CreateSeatCategory creates a seat pricing category.
func (c *Client) CreateSeatCategory(ctx context.Context, token string, cat model.SeatCategory) (model.SeatCategory, error) {
	var out model.SeatCategory
	err := c.do(ctx, http.MethodPost, "/seat-categories", nil, token, cat, &out)
	return out, err
}

// UpdateSeatCategory replaces an existing seat pricing category.
func (c *Client) UpdateSeatCategory(ctx context.Context, token string, cat model.SeatCategory) (model.SeatCategory, error) {
	var out model.SeatCategory
	err := c.do(ctx, http.MethodPut, "/seat-categories/"+url.PathEscape(cat.ID), nil, token, cat, &out)
	return out, err
}

// DeleteSeatCategory removes a seat pricing category.
func (c *Client) DeleteSeatCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/seat-categories/"+url.PathEscape(id), nil, token, nil, nil)
}
