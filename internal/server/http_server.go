package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"github.com/bokysan/basexx/internal/logging"
	"github.com/bokysan/basexx/internal/util/cert"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const DefaultMaxBodySize = 1 << 20

// HttpServer exposes the encoders over HTTP:
//
//   POST /encode/{encoding}   body is the raw data, response is the encoded text
//   POST /decode/{encoding}   body is the encoded text, response is the raw data
//   GET  /encodings           JSON list of the known encodings
//
// The server speaks HTTPS when a certificate is configured.
type HttpServer struct {
	cert.ServerConfig `yaml:",inline"`

	Address         string        `short:"a" long:"address"          env:"BASEXX_ADDRESS" yaml:"address"          description:"Address to listen on (default: 127.0.0.1:6448)"`
	MaxBodySize     int64         `short:"m" long:"max-body-size"                         yaml:"max-body-size"    description:"Maximum size of the request body, in bytes"`
	ShutdownTimeout time.Duration `          long:"shutdown-timeout"                      yaml:"shutdown-timeout" description:"How long to wait for requests in flight on shutdown"`

	secure   bool
	server   *http.Server
	listener net.Listener
	serveErr chan error
}

func NewHttpServer() *HttpServer {
	return &HttpServer{
		Address:         "127.0.0.1:6448",
		MaxBodySize:     DefaultMaxBodySize,
		ShutdownTimeout: 5 * time.Second,
	}
}

func (hs *HttpServer) String() string {
	scheme := "http"
	if hs.secure || hs.HasCertificate() {
		scheme = "https"
	}
	if hs.listener != nil {
		return fmt.Sprintf("%s://%v", scheme, hs.listener.Addr())
	}
	return fmt.Sprintf("%s://%v", scheme, hs.Address)
}

// Router creates the routes and the middleware of the API
func (hs *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Get("/encodings", hs.encodingsHandler)
	router.Post("/encode/{encoding}", hs.encodeHandler)
	router.Post("/decode/{encoding}", hs.decodeHandler)

	return router
}

// Startup starts listening and serves requests in the background
func (hs *HttpServer) Startup() error {
	var tlsConfig *tls.Config
	hs.secure = hs.HasCertificate()
	if hs.secure {
		var err error
		if tlsConfig, err = hs.ServerConfig.GetTlsConfig(); err != nil {
			return errors.Wrapf(err, "Could not configure TLS")
		}
	}

	ln, err := net.Listen("tcp", hs.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", hs.Address)
	}
	hs.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	hs.server = &http.Server{
		Addr:      ln.Addr().String(),
		Handler:   hs.Router(address),
		TLSConfig: tlsConfig,
	}
	hs.serveErr = make(chan error, 1)

	go func() {
		var err error
		if hs.secure {
			log.Infof("Starting HTTPS server at %v", hs)
			err = hs.server.ServeTLS(ln, "", "")
		} else {
			log.Infof("Starting HTTP server at %v", hs)
			err = hs.server.Serve(ln)
		}
		if err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
			hs.serveErr <- err
		}
		close(hs.serveErr)
	}()

	return nil
}

func (hs *HttpServer) Shutdown() error {
	if hs.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), hs.ShutdownTimeout)
	defer cancel()
	return errors.WithStack(hs.server.Shutdown(ctx))
}

// Execute runs the server until it fails or the process is interrupted
func (hs *HttpServer) Execute(args []string) error {
	logging.SetupLogging()

	if err := hs.Startup(); err != nil {
		return err
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	var e error
	select {
	case err := <-hs.serveErr:
		if err != nil {
			e = multierror.Append(e, err)
		}
	case <-interrupted:
		log.Infof("Graceful shutdown...")
	}

	if err := hs.Shutdown(); err != nil {
		e = multierror.Append(e, errors.Wrapf(err, "Could not shutdown %v", hs))
	}
	return e
}
