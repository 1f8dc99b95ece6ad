package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherscreen.app/internal/core/screen"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

const sessionCookie = "screen_session"

// CityForm is the free-text city submission
type CityForm struct {
	City string `form:"city" binding:"required,city"`
}

// SelectCityForm is a shortlist tap; the value is used exactly as sent
type SelectCityForm struct {
	City string `form:"city" binding:"required"`
}

// CityRequest is the JSON city submission
type CityRequest struct {
	City string `json:"city" binding:"required,city"`
}

// ScreenResponse is the JSON view of one session's screen
type ScreenResponse struct {
	Session string       `json:"session"`
	State   screen.State `json:"state"`
	Page    screen.Page  `json:"page"`
}

// getScreen handles GET / requests
func (s *HTTPServerAdapter) getScreen(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "screen.html", scr.Render())
}

// getScreenJSON handles GET /api/screen requests
func (s *HTTPServerAdapter) getScreenJSON(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ScreenResponse{
		Session: sessionID(c),
		State:   scr.Snapshot(),
		Page:    scr.Render(),
	})
}

// toggleTheme handles POST /theme requests
func (s *HTTPServerAdapter) toggleTheme(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}
	scr.ToggleTheme()
	s.backToScreen(c)
}

// toggleCityList handles POST /city/list requests
func (s *HTTPServerAdapter) toggleCityList(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}
	scr.ToggleCityList()
	s.backToScreen(c)
}

// submitCity handles POST /city requests. Rejected input is ignored and the page shown again.
func (s *HTTPServerAdapter) submitCity(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}

	var form CityForm
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Debug("City form rejected", ports.F("error", err.Error()))
		s.backToScreen(c)
		return
	}
	if err := scr.SubmitCity(form.City); err != nil {
		s.logger.Debug("City submission ignored", ports.F("error", err.Error()))
	}
	s.backToScreen(c)
}

// selectCity handles POST /city/select requests
func (s *HTTPServerAdapter) selectCity(c *gin.Context) {
	scr, ok := s.screenFor(c)
	if !ok {
		return
	}

	var form SelectCityForm
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Debug("Shortlist selection rejected", ports.F("error", err.Error()))
		s.backToScreen(c)
		return
	}
	if err := scr.SelectCity(form.City); err != nil {
		s.logger.Debug("Shortlist selection ignored", ports.F("error", err.Error()))
	}
	s.backToScreen(c)
}

// submitCityJSON handles POST /api/city requests
func (s *HTTPServerAdapter) submitCityJSON(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("City request rejected", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Invalid city name"))
		return
	}

	scr, ok := s.screenFor(c)
	if !ok {
		return
	}
	if err := scr.SubmitCity(req.City); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ScreenResponse{
		Session: sessionID(c),
		State:   scr.Snapshot(),
		Page:    scr.Render(),
	})
}

// releaseScreen handles DELETE /api/screen requests
func (s *HTTPServerAdapter) releaseScreen(c *gin.Context) {
	id, _ := c.Cookie(sessionCookie)
	if err := s.sessions.Release(id); err != nil {
		s.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := http.StatusOK
	for _, r := range results {
		if r.Status != "healthy" {
			status = http.StatusServiceUnavailable
			break
		}
	}
	c.JSON(status, results)
}

// screenFor resolves the session screen, creating one when needed. The cookie is
// re-issued on every request so its lifetime follows the server-side idle timeout.
func (s *HTTPServerAdapter) screenFor(c *gin.Context) (*screen.Screen, bool) {
	id, _ := c.Cookie(sessionCookie)

	scr, resolved, err := s.sessions.Acquire(id)
	if err != nil {
		s.logger.Error("Failed to mount screen", ports.F("error", err.Error()))
		s.handleError(c, err)
		return nil, false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, resolved, int(s.sessions.idle.Seconds()), "/", "", false, true)
	c.Set(sessionCookie, resolved)
	return scr, true
}

func (s *HTTPServerAdapter) backToScreen(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCookie)
}
