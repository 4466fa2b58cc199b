package routes

import (
	"github.com/google/wire"

	"github.com/loorthu/vexa/internal/interfaces/httpserver/handlers/dnahandler"
	v1 "github.com/loorthu/vexa/internal/interfaces/httpserver/routes/v1"
)

var RouteProvider = wire.NewSet(
	// Handlers
	dnahandler.NewDNAHandler,

	// Routes
	v1.NewV1Route,
)
