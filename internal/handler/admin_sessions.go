package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/model"
	"github.com/cineseat/booking-gateway/internal/schedule"
)

// ListSessions handles GET /v1/admin/sessions with an optional
// ?filmId filter.
func (h *AdminHandler) ListSessions(c echo.Context) error {
	page, size := pageParams(c)
	sessions, err := h.API.ListSessions(c.Request().Context(), c.QueryParam("filmId"), page, size)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sessions})
}

// CreateSession handles POST /v1/admin/sessions.  A periodic config is
// validated locally before the payload is forwarded, so an inverted or
// malformed recurrence never reaches the upstream.
func (h *AdminHandler) CreateSession(c echo.Context) error {
	session, err := bindSession(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	created, err := h.API.CreateSession(c.Request().Context(), bearerToken(c), session)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSession handles PUT /v1/admin/sessions/:id.
func (h *AdminHandler) UpdateSession(c echo.Context) error {
	session, err := bindSession(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	session.ID = c.Param("id")
	updated, err := h.API.UpdateSession(c.Request().Context(), bearerToken(c), session)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSession handles DELETE /v1/admin/sessions/:id.
func (h *AdminHandler) DeleteSession(c echo.Context) error {
	if err := h.API.DeleteSession(c.Request().Context(), bearerToken(c), c.Param("id")); err != nil {
		return upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// schedulePreviewRequest mirrors the fields of the periodic session
// form.
type schedulePreviewRequest struct {
	StartAt    string `json:"startAt"`
	Period     string `json:"period"`
	PeriodEnd  string `json:"periodEnd"`
	IsPeriodic bool   `json:"isPeriodic"`
}

// PreviewSchedule handles POST /v1/admin/sessions/preview.  It returns
// how many sessions the recurrence would generate and their concrete
// start times, for the "sessions to be created" hint in the form.
// sessionCount is null while the form is incomplete or recurrence is
// off.
func (h *AdminHandler) PreviewSchedule(c echo.Context) error {
	var req schedulePreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s := schedule.Schedule{
		StartAt: req.StartAt,
		Period:  req.Period,
		EndDate: req.PeriodEnd,
		Enabled: req.IsPeriodic,
	}
	count, err := schedule.Count(s)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if count == nil {
		return c.JSON(http.StatusOK, echo.Map{"sessionCount": nil})
	}
	occurrences, err := schedule.Occurrences(s)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	starts := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		starts = append(starts, o.Format("2006-01-02T15:04"))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"sessionCount": count,
		"occurrences":  starts,
	})
}

// bindSession decodes and validates a session payload, including its
// optional periodic configuration.
func bindSession(c echo.Context) (model.Session, error) {
	var session model.Session
	if err := c.Bind(&session); err != nil {
		return session, errors.New("invalid request body")
	}
	if session.FilmID == "" || session.HallID == "" {
		return session, errors.New("filmId and hallId are required")
	}
	if _, err := time.Parse("2006-01-02T15:04", session.StartAt); err != nil {
		return session, errors.New("startAt must use the 2006-01-02T15:04 layout")
	}
	if pc := session.PeriodicConfig; pc != nil {
		count, err := schedule.Count(schedule.Schedule{
			StartAt: session.StartAt,
			Period:  pc.Period,
			EndDate: pc.PeriodGenerationEndsAt,
			Enabled: true,
		})
		if err != nil {
			return session, err
		}
		if count == nil || *count == 0 {
			return session, errors.New("periodic config generates no sessions")
		}
	}
	return session, nil
}
