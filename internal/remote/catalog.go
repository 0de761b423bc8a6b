package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cineseat/booking-gateway/internal/model"
)

// ListFilms fetches a page of the film catalogue.
func (c *Client) ListFilms(ctx context.Context, page, size int) ([]model.Film, error) {
	var env listEnvelope[model.Film]
	if err := c.do(ctx, http.MethodGet, "/films", pageQuery(page, size), "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetFilm fetches a single film by id.
func (c *Client) GetFilm(ctx context.Context, id string) (model.Film, error) {
	var f model.Film
	err := c.do(ctx, http.MethodGet, "/films/"+url.PathEscape(id), nil, "", nil, &f)
	return f, err
}

// ListReviews fetches a page of reviews for a film.
func (c *Client) ListReviews(ctx context.Context, filmID string, page, size int) ([]model.Review, error) {
	var env listEnvelope[model.Review]
	path := "/films/" + url.PathEscape(filmID) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page, size), "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ListSessions fetches sessions, optionally filtered by film id.
func (c *Client) ListSessions(ctx context.Context, filmID string, page, size int) ([]model.Session, error) {
	q := pageQuery(page, size)
	if filmID != "" {
		q.Set("filmId", filmID)
	}
	var env listEnvelope[model.Session]
	if err := c.do(ctx, http.MethodGet, "/sessions", q, "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSession fetches a single session by id.
func (c *Client) GetSession(ctx context.Context, id string) (model.Session, error) {
	var s model.Session
	err := c.do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(id), nil, "", nil, &s)
	return s, err
}

// ListHalls fetches all halls.
func (c *Client) ListHalls(ctx context.Context, token string) ([]model.Hall, error) {
	var env listEnvelope[model.Hall]
	if err := c.do(ctx, http.MethodGet, "/halls", nil, token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetHallPlan fetches the seating layout of a hall together with its
// seat categories.
func (c *Client) GetHallPlan(ctx context.Context, hallID string) (model.HallPlan, error) {
	var plan model.HallPlan
	err := c.do(ctx, http.MethodGet, "/halls/"+url.PathEscape(hallID)+"/plan", nil, "", nil, &plan)
	return plan, err
}

// ListSeatCategories fetches a page of seat pricing categories.
func (c *Client) ListSeatCategories(ctx context.Context, token string, page, size int) ([]model.SeatCategory, error) {
	var env listEnvelope[model.SeatCategory]
	if err := c.do(ctx, http.MethodGet, "/seat-categories", pageQuery(page, size), token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
