// Package httpapi exposes the blog services over HTTP using gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/logging"
	"github.com/dmitrijs2005/blogapi/internal/server/config"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the part of services.UserService the handlers need.
type UserService interface {
	CreateUser(ctx context.Context, data models.UserCreateInput) (*models.User, error)
}

// PostService is the part of services.PostService the handlers need.
type PostService interface {
	Post(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error)
	Posts(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error)
	CreatePost(ctx context.Context, data models.PostCreateInput) (*models.Post, error)
	UpdatePost(ctx context.Context, args models.PostUpdateArgs) (*models.Post, error)
	PublishPost(ctx context.Context, id int64) (*models.Post, error)
	DeletePost(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error)
}

// Pinger reports store liveness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	corsOrigins     []string

	users  UserService
	posts  PostService
	pinger Pinger
	logger logging.Logger
}

// NewHTTPServer wires the services into a server configured from c.
// pinger may be nil when the store has nothing to ping.
func NewHTTPServer(c *config.Config, l logging.Logger, us UserService, ps PostService, pinger Pinger) (*HTTPServer, error) {
	if c.GinMode != "" {
		switch c.GinMode {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			gin.SetMode(c.GinMode)
		default:
			return nil, errors.New("unknown gin mode: " + c.GinMode)
		}
	}

	return &HTTPServer{
		address:         c.HTTPAddr,
		readTimeout:     c.ReadTimeout,
		writeTimeout:    c.WriteTimeout,
		shutdownTimeout: c.ShutdownTimeout,
		corsOrigins:     c.CORSAllowedOrigins,
		users:           us,
		posts:           ps,
		pinger:          pinger,
		logger:          l.With("module", "http_server"),
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

// serve returns only after the shutdown goroutine has finished, including
// when Serve fails on its own.
func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-stopped
		return err
	}

	return <-stopped
}
