package interfaces

import (
	"github.com/google/wire"

	"github.com/loorthu/vexa/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHTTPServer,
)
