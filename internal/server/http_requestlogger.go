package server

import (
	"github.com/bokysan/basexx/internal/args"
	"github.com/bokysan/basexx/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net"
	"net/http"
	"strings"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns a middleware logging every request in the configured log format
func GetRequestLogger(address *net.TCPAddr) (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger( // Write requests to log
			&logging.JSONLogFormatter{
				ServerAddress: address,
			},
		)
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		logger = middleware.RequestLogger( // Write requests to log
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: logging.IsColorDisabled(color),
			},
		)
	}

	return
}
