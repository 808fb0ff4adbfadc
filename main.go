package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/inbox"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/session"
	"github.com/Zachkp/folio/internal/typing"
	"github.com/Zachkp/folio/internal/visibility"
	"github.com/Zachkp/folio/internal/web"
	"github.com/Zachkp/folio/pkg/logger"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
	purgeInterval     = time.Hour
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "folio stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	gin.SetMode(cfg.GinMode)

	site, err := loadSite(cfg.ContentDir)
	if err != nil {
		return err
	}

	box, err := inbox.Open(ctx, cfg.InboxDSN)
	if err != nil {
		return err
	}
	defer func() {
		if n, err := box.Count(context.Background()); err == nil {
			log.Info(ctx, "inbox closed", logger.Int("messages", n))
		}
		_ = box.Close()
	}()

	go purgeInbox(ctx, log, box, cfg.InboxRetention)

	m := metrics.New()
	sessions := session.NewRegistry(
		session.WithTTL(cfg.SessionTTL),
		session.WithTrackerOptions(visibility.WithThreshold(visibility.DefaultThreshold)),
		session.WithOnResize(m.SetActiveSessions),
		session.WithOnEvict(func(s *session.Session) {
			if s.HasCarousel() {
				m.CarouselClosed()
			}
		}),
	)
	go sessions.Run(ctx, cfg.SessionSweep)

	srv, err := web.New(web.Deps{
		Site:      site,
		Sessions:  sessions,
		Inbox:     box,
		Metrics:   m,
		Log:       log,
		ResumeURL: cfg.ResumeURL,
		Typing: typing.Timing{
			Interval: cfg.TypingInterval(),
			Pause:    cfg.TypingPause(),
			Blink:    cfg.CursorBlink(),
		},
		Carousel: []carousel.Option{carousel.WithDuration(cfg.Transition())},
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr), logger.Int("projects", len(site.Projects)))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info(ctx, "server stopped")
	return nil
}

// purgeInbox drops messages older than retention, once at startup and then
// hourly.
func purgeInbox(ctx context.Context, log logger.Logger, box *inbox.Store, retention time.Duration) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		n, err := box.Purge(ctx, time.Now().Add(-retention))
		switch {
		case err != nil && ctx.Err() == nil:
			log.Error(ctx, "inbox purge failed", logger.Error(err))
		case n > 0:
			log.Info(ctx, "inbox purged", logger.Int("removed", int(n)))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func loadSite(dir string) (*content.Site, error) {
	if dir == "" {
		return content.Default()
	}
	return content.FromDir(dir)
}
