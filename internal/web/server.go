// Package web serves the explorer as HTML pages. Every request is one render
// cycle: query parameters carry control values, the page is rebuilt from scratch.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/peplxx/probability-explorer/internal/app"
	"github.com/peplxx/probability-explorer/internal/config"
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/peplxx/probability-explorer/internal/ui"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

type route struct {
	Path string
	Page string
}

var routes = []route{
	{"/continuous", app.PageContinuous},
	{"/discrete", app.PageDiscrete},
	{"/experiments", app.PageExperiments},
	{"/about", app.PageAbout},
}

// Server is the HTTP host of the app.
type Server struct {
	app  *app.App
	plot config.Plot
	log  *logrus.Logger
	tmpl *template.Template
	mux  *http.ServeMux
}

// NewServer parses the page templates and registers the routes.
func NewServer(a *app.App, plot config.Plot, log *logrus.Logger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	tmpl, err := template.New("page.html").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	s := &Server{app: a, plot: plot, log: log, tmpl: tmpl, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	for _, r := range routes {
		s.mux.HandleFunc(r.Path, s.handlePage(r.Page))
	}
	return s, nil
}

// Handler returns the routes wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("web server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		s.log.Info("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routes[0].Path, http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

type navLink struct {
	Name   string
	Path   string
	Active bool
}

type pageData struct {
	Title    string
	Path     string
	Nav      []navLink
	Controls []control
	Main     []block
	Panels   [ui.NumPanels][]block
}

func (s *Server) handlePage(pageName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := ui.Input{}
		for k, vs := range r.URL.Query() {
			// последнее значение: скрытое поле checkbox идёт раньше самого checkbox
			if len(vs) > 0 {
				input[k] = vs[len(vs)-1]
			}
		}
		input[app.ControlPage] = pageName

		// Запрос конкретного элемента, которого нет в каталоге, это 404.
		if item, ok := input[app.ControlItem]; ok && item != "" {
			if c, has := s.app.ItemChoice(pageName); has && c.Resolve(item) != item {
				s.log.WithFields(logrus.Fields{"page": pageName, "item": item}).Debug("unknown item")
				http.Error(w, "unknown item "+item, http.StatusNotFound)
				return
			}
		}

		p := newPage(input, s.plot, s.log.WithField("path", r.URL.Path))
		if err := s.app.Serve(p); err != nil {
			if errors.Is(err, distribution.ErrUnknownDistribution) || errors.Is(err, experiment.ErrUnknownExperiment) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			s.log.WithError(err).WithField("page", pageName).Error("render failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		data := pageData{
			Title:    pageName,
			Path:     r.URL.Path,
			Controls: p.controls,
			Main:     p.main,
			Panels:   p.panels,
		}
		for _, rt := range routes {
			data.Nav = append(data.Nav, navLink{Name: rt.Page, Path: rt.Path, Active: rt.Page == pageName})
		}

		var buf bytes.Buffer
		if err := s.tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
			s.log.WithError(err).Error("template failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
