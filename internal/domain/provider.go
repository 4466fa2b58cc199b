package domain

import (
	"github.com/google/wire"

	"github.com/loorthu/vexa/internal/domain/dna"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	dna.NewIntegration,
)
