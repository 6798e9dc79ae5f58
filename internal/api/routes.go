package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/s-pike/advent2021/internal/api/middleware"
	"github.com/s-pike/advent2021/internal/models"
)

const mimeText = "text/plain"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/solvers").
			To(handler.Solvers).
			Doc("List registered solvers").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solvers"}).
			Writes(SolversResponse{}).
			Returns(200, "OK", SolversResponse{}))

	ws.
		Route(ws.POST("/solve").
			To(handler.Solve).
			Doc("Solve a puzzle part from inline input").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Solver Not Found", middleware.ErrorResponse{}).
			Returns(422, "Unprocessable Input", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/solve/{day}/{part}").
			To(handler.SolveRaw).
			Doc("Solve a puzzle part from the raw puzzle text in the body").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Consumes(mimeText, restful.MIME_OCTET).
			Param(ws.PathParameter("day", "Puzzle day").DataType("integer")).
			Param(ws.PathParameter("part", "Puzzle part").DataType("integer")).
			Param(ws.QueryParameter("request_id", "Request identifier, generated when empty").DataType("string").Required(false)).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Solver Not Found", middleware.ErrorResponse{}).
			Returns(413, "Input Too Large", middleware.ErrorResponse{}).
			Returns(422, "Unprocessable Input", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
