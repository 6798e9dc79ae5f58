package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/s-pike/advent2021/internal/api/middleware"
)

const DocsPath = "/apidocs.json"

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Advent 2021 Solver API",
			Description: "Giant squid bingo and hydrothermal vent solvers",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "solvers", Description: "Registered solvers"}},
		{TagProps: spec.TagProps{Name: "solve", Description: "Solve operations"}},
	}
}

// RegisterDocs serves the OpenAPI document for every web service already in container.
func RegisterDocs(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       DocsPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

// NewContainer builds the full API: filters, routes and docs.
func NewContainer(handler *Handler) *restful.Container {
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	RegisterRoutes(container, handler)
	RegisterDocs(container)

	return container
}
