package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/reactor"
	log "github.com/sirupsen/logrus"
)

const (
	APIMessage      = "PFR Reactor Simulator API"
	APIVersion      = "1.0"
	ShutdownTimeout = 5 * time.Second
)

type Options struct {
	Params         reactor.Params
	Integrator     string
	AllowedOrigins []string
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64
	Burst     int
	Logger    *log.Logger
}

type Server struct {
	params     reactor.Params
	integrator string
	origins    map[string]bool
	limiter    *IPRateLimiter
	upgrader   websocket.Upgrader
	log        *log.Logger
	router     *mux.Router
}

func New(opts Options) (*Server, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.Integrator == "" {
		opts.Integrator = integrators.Default
	}
	if _, err := integrators.New(opts.Integrator); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}

	s := &Server{
		params:     opts.Params,
		integrator: opts.Integrator,
		origins:    make(map[string]bool, len(opts.AllowedOrigins)),
		log:        opts.Logger,
		router:     mux.NewRouter(),
	}
	for _, o := range opts.AllowedOrigins {
		s.origins[o] = true
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = NewIPRateLimiter(opts.RateLimit, burst)
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/simulate", s.handleSimulate).Methods("POST")
	s.router.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
}

// Handler returns the router wrapped in logging, rate limiting and CORS.
// CORS is outermost so preflight requests never count against the limit.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	if s.limiter != nil {
		h = s.limiter.LimitMiddleware(h)
	}
	h = s.logRequests(h)
	return s.cors(h)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(log.Fields{"addr": addr, "integrator": s.integrator}).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// simulate runs one request with a fresh integrator; RK4 keeps scratch
// buffers and is not safe to share between handlers. JSON cannot carry
// NaN or Inf, so a diverged profile is an error here.
func (s *Server) simulate(req reactor.Request) (*reactor.Result, error) {
	integ, err := integrators.New(s.integrator)
	if err != nil {
		return nil, err
	}
	res, err := reactor.Simulate(req, s.params, integ)
	if err != nil {
		return nil, err
	}
	if err := res.Profile.CheckFinite(); err != nil {
		s.log.WithError(err).WithFields(log.Fields{
			"t_in":     req.TIn,
			"velocity": req.Velocity,
			"t_jacket": req.TJacket,
		}).Warn("profile left the finite range")
		return nil, fmt.Errorf("profile not representable: %w", err)
	}
	return res, nil
}
