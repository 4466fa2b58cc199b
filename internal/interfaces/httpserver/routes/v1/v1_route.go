package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/loorthu/vexa/internal/interfaces/httpserver/handlers/dnahandler"
)

type V1Route struct {
	dnaHandler *dnahandler.DNAHandler
}

func NewV1Route(dnaHandler *dnahandler.DNAHandler) *V1Route {
	return &V1Route{dnaHandler: dnaHandler}
}

func (route *V1Route) RegisterRouter(router *gin.RouterGroup) {
	v1 := router.Group("v1")

	dnaRoute := v1.Group("dna")
	dnaRoute.GET("/models", route.dnaHandler.GetModels)
	dnaRoute.POST("/summary", route.dnaHandler.Summarize)
	dnaRoute.GET("/config", route.dnaHandler.GetConfig)
}
