package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/hirestack/go-interview-server/internal/config"
	"github.com/hirestack/go-interview-server/reports"
	"github.com/hirestack/go-interview-server/rooms"
	"github.com/hirestack/go-interview-server/token"
	"github.com/hirestack/go-interview-server/token/invite"
	"github.com/hirestack/go-interview-server/uploads"
)

// RoomProvider provisions video rooms for interview sessions
type RoomProvider interface {
	CreateOrGetRoom(ctx context.Context, sessionID string) (*rooms.Room, error)
	DeleteRoom(ctx context.Context, roomName string) (bool, error)
}

// Deps are the collaborators the server is wired with. Nil optional fields
// disable the corresponding feature.
type Deps struct {
	UploadRepo   uploads.Repo      // Required
	Pipeline     *uploads.Pipeline
	ReportSource reports.Source    // Optional; report endpoint 404s without it
	Rooms        RoomProvider      // Optional; session responses omit the room
}

type Server struct {
	env       string
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	codec     *token.Codec
	issuer    *invite.Issuer
	validator *invite.Validator
	deps      Deps
	logger    zerolog.Logger
}

func New(cfg config.Config, deps Deps) (*Server, error) {
	if deps.UploadRepo == nil {
		return nil, fmt.Errorf("[Server New] upload repo is required")
	}

	codec := token.NewCodec(token.NewHMACSigner(cfg.GetTokenSecret()))

	issuer, err := invite.NewIssuer(codec, invite.WithTTL(cfg.GetInviteTokenTTL()))
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create invitation issuer: %w", err)
	}

	s := &Server{
		env:       cfg.GetEnv(),
		mux:       http.NewServeMux(),
		config:    cfg,
		codec:     codec,
		issuer:    issuer,
		validator: invite.NewValidator(codec),
		deps:      deps,
		logger:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger(),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	for _, route := range s.routes {
		s.logger.Info().Str("route", route).Msg("registered")
	}
}
