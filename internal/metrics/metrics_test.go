package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a fresh manager", t, func() {
		m := New()

		Convey("Transition outcomes are counted per label", func() {
			m.RecordTransition(TransitionAccepted)
			m.RecordTransition(TransitionBusy)
			m.RecordTransition(TransitionBusy)

			So(testutil.ToFloat64(m.carouselTransitions.WithLabelValues(TransitionBusy)), ShouldEqual, 2)
			So(testutil.ToFloat64(m.carouselTransitions.WithLabelValues(TransitionAccepted)), ShouldEqual, 1)
		})

		Convey("Gauges follow opens, closes and session counts", func() {
			m.CarouselOpened()
			m.CarouselOpened()
			m.CarouselClosed()
			m.SetActiveSessions(7)

			So(testutil.ToFloat64(m.carouselsOpen), ShouldEqual, 1)
			So(testutil.ToFloat64(m.sessionsActive), ShouldEqual, 7)
		})

		Convey("The handler serves the text exposition", func() {
			m.RecordReveal("awards")
			m.RecordContactMessage()
			m.RecordHTTPRequest("/about", "GET", "200", 0.01)

			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			body := rec.Body.String()
			So(rec.Code, ShouldEqual, 200)
			So(body, ShouldContainSubstring, `folio_timeline_reveals_total{section="awards"} 1`)
			So(body, ShouldContainSubstring, "folio_contact_messages_total 1")
			So(body, ShouldContainSubstring, `folio_http_requests_total{method="GET",route="/about",status_code="200"} 1`)
		})
	})
}
