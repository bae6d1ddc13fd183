// Package server is a local stand-in for the DataSnap server that receives
// supplier intake batches. It accepts, checks and remembers what a client
// submits; nothing is persisted.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/intrari-furnizori/internal/client"
	"github.com/rezonia/intrari-furnizori/internal/model"
	"github.com/rezonia/intrari-furnizori/internal/report"
	"github.com/rezonia/intrari-furnizori/internal/schema"
)

// DefaultKeep is how many accepted batches are remembered by default.
const DefaultKeep = 50

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       zerolog.Logger

	// Keep bounds the accepted batches listed by GET /received.
	Keep int
}

// Server represents the stand-in receiver
type Server struct {
	config *Config
	router *gin.Engine
	store  *store
	http   *http.Server
}

// NewServer creates a new receiver
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	keep := config.Keep
	if keep <= 0 {
		keep = DefaultKeep
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(config.Logger))

	s := &Server{
		config: config,
		router: router,
		store:  newStore(keep),
	}

	s.http = &http.Server{
		Addr:         config.Address,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST(client.Path, s.handleIntrari)
	s.router.POST("/validate", s.handleValidate)
	s.router.GET("/received", s.handleReceived)
}

// Run starts the HTTP server. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Run() error {
	s.config.Logger.Info().Str("address", s.config.Address).Str("path", client.Path).Msg("receiver listening")
	return s.http.ListenAndServe()
}

// Shutdown stops accepting requests and waits for active ones to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleIntrari(c *gin.Context) {
	batch, ok := s.decode(c)
	if !ok {
		return
	}

	id := c.GetString(requestIDKey)
	sum := report.Summarize(batch)
	s.store.add(Received{
		RequestID:  id,
		ReceivedAt: time.Now().UTC(),
		Summary:    sum,
		Batch:      batch,
	})

	s.config.Logger.Info().
		Str("request_id", id).
		Int("documents", sum.Documents).
		Int("lines", sum.Lines).
		Msg("batch accepted")

	c.JSON(http.StatusOK, AcceptResponse{
		Result:    "ok",
		Documente: len(batch.Documente),
		RequestID: id,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	batch, ok := s.decode(c)
	if !ok {
		return
	}

	sum := report.Summarize(batch)
	c.JSON(http.StatusOK, ValidationResponse{
		Valid:   true,
		Summary: &sum,
	})
}

func (s *Server) handleReceived(c *gin.Context) {
	c.JSON(http.StatusOK, ReceivedResponse{Batches: s.store.list()})
}

// decode reads a batch from the body and writes the error response when
// the body is empty, off-schema or breaks a batch invariant.
func (s *Server) decode(c *gin.Context) (model.IntrareFurnizori, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body", RequestID: c.GetString(requestIDKey)})
		return model.IntrareFurnizori{}, false
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body", RequestID: c.GetString(requestIDKey)})
		return model.IntrareFurnizori{}, false
	}

	if err := schema.Validate(schema.Wire, body); err != nil {
		s.reject(c, "batch does not match the wire schema", err)
		return model.IntrareFurnizori{}, false
	}

	var batch model.IntrareFurnizori
	if err := json.Unmarshal(body, &batch); err != nil {
		s.reject(c, "failed to decode batch", err)
		return model.IntrareFurnizori{}, false
	}

	if err := batch.Validate(); err != nil {
		s.reject(c, "batch failed validation", err)
		return model.IntrareFurnizori{}, false
	}
	return batch, true
}

func (s *Server) reject(c *gin.Context, msg string, err error) {
	resp := ErrorResponse{
		Error:     msg,
		Details:   err.Error(),
		RequestID: c.GetString(requestIDKey),
	}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
		resp.Accepted = verr.Accepted
	}

	s.config.Logger.Warn().
		Str("request_id", resp.RequestID).
		Err(err).
		Msg(msg)

	c.JSON(http.StatusUnprocessableEntity, resp)
}
