package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/inbox"
	"github.com/Zachkp/folio/pkg/logger"
)

func (s *Server) contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page("contact", gin.H{
		"contact": s.site.Profile.Contact,
	}))
}

// submitContact records the form locally. Errors are answered with a 200
// fragment so HTMX swaps the message in.
func (s *Server) submitContact(c *gin.Context) {
	ctx := c.Request.Context()
	msg, err := s.inbox.Record(ctx, inbox.Submission{
		Name:       c.PostForm("fullName"),
		Email:      c.PostForm("email"),
		Message:    c.PostForm("message"),
		ClientAddr: c.ClientIP(),
	})
	switch {
	case errors.Is(err, inbox.ErrInvalidSubmission):
		reason := strings.TrimPrefix(err.Error(), inbox.ErrInvalidSubmission.Error()+": ")
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Please check the form: " + reason + ".",
		})
		return
	case err != nil:
		_ = c.Error(err)
		s.log.Error(ctx, "record contact message", logger.Error(err))
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.metrics.RecordContactMessage()
	s.log.Info(ctx, "contact message recorded", logger.Any("id", msg.ID))
	c.HTML(http.StatusOK, "contact-success", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
		"name":    msg.Name,
	})
}
