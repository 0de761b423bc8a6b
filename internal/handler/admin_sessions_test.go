package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineseat/booking-gateway/internal/handler"
	"github.com/cineseat/booking-gateway/internal/remote"
)

func previewRequest(t *testing.T, body string) (*handler.AdminHandler, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/sessions/preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return handler.NewAdminHandler(remote.NewClient("http://unused", time.Second)), e.NewContext(req, rec), rec
}

func TestPreviewScheduleDaily(t *testing.T) {
	h, c, rec := previewRequest(t, `{"startAt":"2026-01-01T10:00","period":"EVERY_DAY","periodEnd":"2026-01-03","isPeriodic":true}`)
	require.NoError(t, h.PreviewSchedule(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionCount *int     `json:"sessionCount"`
		Occurrences  []string `json:"occurrences"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.SessionCount)
	assert.Equal(t, 3, *resp.SessionCount)
	assert.Equal(t, []string{"2026-01-01T10:00", "2026-01-02T10:00", "2026-01-03T10:00"}, resp.Occurrences)
}

func TestPreviewScheduleRecurrenceOff(t *testing.T) {
	h, c, rec := previewRequest(t, `{"startAt":"2026-01-01T10:00","period":"EVERY_DAY","periodEnd":"2026-01-03","isPeriodic":false}`)
	require.NoError(t, h.PreviewSchedule(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["sessionCount"]))
}

func TestPreviewScheduleInvertedRangeIsZero(t *testing.T) {
	h, c, rec := previewRequest(t, `{"startAt":"2026-01-10T10:00","period":"EVERY_WEEK","periodEnd":"2026-01-03","isPeriodic":true}`)
	require.NoError(t, h.PreviewSchedule(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionCount *int `json:"sessionCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.SessionCount)
	assert.Equal(t, 0, *resp.SessionCount)
}

func TestPreviewScheduleRejectsUnknownPeriod(t *testing.T) {
	h, c, rec := previewRequest(t, `{"startAt":"2026-01-01T10:00","period":"EVERY_FORTNIGHT","periodEnd":"2026-01-03","isPeriodic":true}`)
	require.NoError(t, h.PreviewSchedule(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
