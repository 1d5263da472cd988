// Package server serves the playground web assets and passes calldata API
// traffic through to the upstream.
//
// Routing, in order:
//
//	/ (exact) and /api, /api/*   → upstream, method/headers/body untouched
//	existing static file          → served from the asset directory
//	anything else                 → index.html with 200 (SPA fallback)
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3play/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const fallbackDocument = "index.html"

var forwardedHeaders = []string{"X-Forwarded-For", "X-Forwarded-Host", "X-Forwarded-Proto", "Forwarded"}

// Options configures a Server.
type Options struct {
	Addr      string // listen address, e.g. ":8080"
	APIURL    string // upstream origin, e.g. "http://localhost:8000"
	StaticDir string // asset directory; empty serves the embedded assets
	Logger    *slog.Logger

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server is the static file server and reverse proxy.
type Server struct {
	opts     Options
	upstream *url.URL
	assets   fs.FS
	index    []byte
	proxy    *httputil.ReverseProxy
	handler  http.Handler
	logger   *slog.Logger
}

// New validates opts and builds the handler chain.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	upstream, err := url.Parse(opts.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL: %w", err)
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return nil, fmt.Errorf("invalid upstream URL %q: scheme and host required", opts.APIURL)
	}

	s := &Server{opts: opts, upstream: upstream, logger: opts.Logger}

	if opts.StaticDir != "" {
		info, err := os.Stat(opts.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", opts.StaticDir)
		}
		s.assets = os.DirFS(opts.StaticDir)
		// A directory without index.html still gets the generated page as fallback.
		if data, err := fs.ReadFile(s.assets, fallbackDocument); err == nil {
			s.index = data
		}
	} else {
		s.assets = embeddedAssets()
	}
	if s.index == nil {
		s.index, err = renderIndex(opts.APIURL)
		if err != nil {
			return nil, fmt.Errorf("rendering index: %w", err)
		}
	}

	s.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(upstream)
			// Rewrite mode drops these before calling us; pass the client's through.
			for _, h := range forwardedHeaders {
				if v, ok := r.In.Header[h]; ok {
					r.Out.Header[h] = append([]string(nil), v...)
				}
			}
		},
		ErrorHandler: s.proxyError,
	}

	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return accessLog(s.logger, next) })
	r.Use(middleware.Recoverer)

	r.Handle("/", s.proxy)
	r.Handle("/api", s.proxy)
	r.Handle("/api/*", s.proxy)

	r.Get("/*", s.serveStatic)
	r.Head("/*", s.serveStatic)

	r.NotFound(s.serveIndex)
	r.MethodNotAllowed(s.serveIndex)
	return r
}

// Handler returns the root handler, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("web ui listening", "addr", ln.Addr().String(), "upstream", s.upstream.String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	if name, ok := s.staticFile(r.URL.Path); ok {
		http.ServeFileFS(w, r, s.assets, name)
		return
	}
	s.serveIndex(w, r)
}

// isProxied mirrors the proxy routes for the access log.
func isProxied(p string) bool {
	return p == "/" || p == "/api" || strings.HasPrefix(p, "/api/")
}

// staticFile maps a URL path to a regular file in the asset FS.
func (s *Server) staticFile(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || name == fallbackDocument || !fs.ValidPath(name) {
		return "", false
	}
	info, err := fs.Stat(s.assets, name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(s.index)))
	// Always a full 200; Range and conditional headers are ignored.
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(s.index)
	}
}

func (s *Server) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("upstream request failed",
		"method", r.Method, "path", r.URL.Path, "upstream", s.upstream.String(), "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   true,
		"message": "upstream unavailable: " + err.Error(),
	})
}
