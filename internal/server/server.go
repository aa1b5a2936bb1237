// Package server provides the HTTP transport in front of the resolution
// pipeline: the /search route consumed by quiz clients plus a small
// management surface over the answer cache.
package server

import (
	"context"
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quizd/quizd/internal/cache"
	"github.com/quizd/quizd/internal/config"
	"github.com/quizd/quizd/internal/provider"
	"github.com/quizd/quizd/internal/resolver"
)

// Answerer resolves one question into a response envelope.
type Answerer interface {
	Resolve(ctx context.Context, q resolver.Question) resolver.Result
}

// Server is the HTTP server for the quiz-answering service.
type Server struct {
	resolver   Answerer
	dispatcher *provider.Dispatcher
	store      *cache.Cache
	network    config.NetworkConfig
	logger     zerolog.Logger
	engine     *gin.Engine
}

// New creates a new HTTP server.
func New(res Answerer, dispatcher *provider.Dispatcher, store *cache.Cache, network config.NetworkConfig, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(ginLogger(logger))
	engine.Use(gin.Recovery())

	server := &Server{
		resolver:   res,
		dispatcher: dispatcher,
		store:      store,
		network:    network,
		logger:     logger,
		engine:     engine,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)

	// Some quiz clients lose the POST body in transit, so the search route
	// answers both verbs.
	s.engine.POST("/search", s.handleSearchPost)
	s.engine.GET("/search", s.handleSearchGet)

	s.engine.GET("/cache", s.handleCacheList)
	s.engine.GET("/cache/search", s.handleCacheSearch)
	s.engine.DELETE("/cache/:id", s.handleCacheDelete)
	s.engine.DELETE("/cache", s.handleCacheClear)

	s.engine.GET("/stats", s.handleStats)
}

// Start starts the HTTP server. With LAN exposure off the service binds
// localhost only.
func (s *Server) Start() error {
	host := "localhost"
	if s.network.LAN {
		host = "0.0.0.0"
		s.logger.Info().
			Str("lan_ip", localIP()).
			Msg("LAN exposure enabled")
	}

	addr := fmt.Sprintf("%s:%d", host, s.network.Port)
	s.logger.Info().
		Str("addr", addr).
		Msg("Starting HTTP server")

	return s.engine.Run(addr)
}

// ginLogger creates a Gin middleware that logs using zerolog.
func ginLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

// localIP returns the first non-loopback IPv4 address, for operator logs
// when the service is exposed on the LAN.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
