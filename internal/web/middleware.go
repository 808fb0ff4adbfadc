package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/session"
	"github.com/Zachkp/folio/pkg/logger"
)

const (
	sessionCookie = "folio_session"
	sessionKey    = "session"
)

// observe records request metrics and logs each request.
func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()
	elapsed := time.Since(start)

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	s.metrics.RecordHTTPRequest(route, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())

	fields := []logger.Field{
		logger.String("method", c.Request.Method),
		logger.String("route", route),
		logger.Int("status", status),
		logger.Any("elapsed", elapsed),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error(c.Request.Context(), "request failed", append(fields, logger.Any("errors", c.Errors.Errors()))...)
		return
	}
	s.log.Debug(c.Request.Context(), "request", fields...)
}

// withSession attaches the visitor's session, issuing a cookie for new
// visitors.
func (s *Server) withSession(c *gin.Context) {
	id, _ := c.Cookie(sessionCookie)
	sess, created := s.sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
