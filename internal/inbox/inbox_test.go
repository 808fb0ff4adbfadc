package inbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

var dbSeq atomic.Int64

func openTestStore() *Store {
	dsn := fmt.Sprintf("file:inbox_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	s, err := Open(context.Background(), dsn)
	if err != nil {
		panic(err)
	}
	return s
}

func TestSubmissionValidate(t *testing.T) {
	Convey("Given submissions with missing or bad fields", t, func() {
		cases := []Submission{
			{Name: " ", Email: "a@b.co", Message: "hi"},
			{Name: "Ann", Email: "", Message: "hi"},
			{Name: "Ann", Email: "not-an-email", Message: "hi"},
			{Name: "Ann", Email: "a@b.co", Message: "\n\t"},
			{Name: "Ann", Email: "a@b.co", Message: strings.Repeat("x", MaxMessageLen+1)},
		}
		for _, c := range cases {
			So(errors.Is(c.Validate(), ErrInvalidSubmission), ShouldBeTrue)
		}
	})

	Convey("A good submission is trimmed", t, func() {
		s := Submission{Name: " Ann ", Email: " ann@example.com", Message: " hello \n"}
		So(s.Validate(), ShouldBeNil)
		So(s.Name, ShouldEqual, "Ann")
		So(s.Message, ShouldEqual, "hello")
	})
}

func TestStore(t *testing.T) {
	Convey("Given an in-memory inbox", t, func() {
		ctx := context.Background()
		s := openTestStore()
		defer s.Close()

		clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return clock }

		Convey("Recorded messages come back newest first with hashed addresses", func() {
			first, err := s.Record(ctx, Submission{Name: "Ann", Email: "ann@example.com", Message: "one", ClientAddr: "10.0.0.1"})
			So(err, ShouldBeNil)
			clock = clock.Add(time.Minute)
			second, err := s.Record(ctx, Submission{Name: "Bob", Email: "bob@example.com", Message: "two", ClientAddr: "10.0.0.1"})
			So(err, ShouldBeNil)

			So(first.HashedAddr, ShouldEqual, second.HashedAddr)
			So(first.HashedAddr, ShouldHaveLength, 16)
			So(first.HashedAddr, ShouldNotContainSubstring, "10.0.0.1")

			msgs, err := s.Recent(ctx, 10)
			So(err, ShouldBeNil)
			So(msgs, ShouldHaveLength, 2)
			So(msgs[0].Name, ShouldEqual, "Bob")
			So(msgs[1].ReceivedAt.Equal(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)), ShouldBeTrue)

			n, err := s.Count(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			Convey("Purge drops old messages only", func() {
				removed, err := s.Purge(ctx, clock)
				So(err, ShouldBeNil)
				So(removed, ShouldEqual, 1)

				n, _ := s.Count(ctx)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("Invalid submissions are not stored", func() {
			_, err := s.Record(ctx, Submission{Name: "Ann"})
			So(errors.Is(err, ErrInvalidSubmission), ShouldBeTrue)

			n, _ := s.Count(ctx)
			So(n, ShouldEqual, 0)
		})
	})
}
