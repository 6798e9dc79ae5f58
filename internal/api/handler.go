package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
	"github.com/s-pike/advent2021/internal/api/middleware"
	"github.com/s-pike/advent2021/internal/models"
	"github.com/s-pike/advent2021/internal/puzzle"
	"github.com/s-pike/advent2021/internal/solver"
)

// MaxInputBytes caps the raw puzzle text accepted by SolveRaw.
const MaxInputBytes = 4 << 20

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type SolverLister interface {
	List() []models.SolverInfo
}

type Handler struct {
	executor Executor
	solvers  SolverLister
	logger   *zerolog.Logger
}

func NewHandler(executor Executor, solvers SolverLister, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		solvers:  solvers,
		logger:   logger,
	}
}

// POST /api/v1/solve
// Body: SolveRequest with inline input
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	// files on the server are not reachable over HTTP
	if solveRequest.Input == "" {
		middleware.HandleRequestError(resp, middleware.ErrEmptyInput, http.StatusBadRequest, solveRequest.RequestID)
		return
	}
	solveRequest.InputPath = ""

	h.solve(req.Request.Context(), resp, solveRequest)
}

// POST /api/v1/solve/{day}/{part}
// Body: raw puzzle text
func (h *Handler) SolveRaw(req *restful.Request, resp *restful.Response) {
	day, err := pathInt(req, "day")
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	part, err := pathInt(req, "part")
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, MaxInputBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.HandleError(resp, fmt.Errorf("%w: limit is %d bytes", middleware.ErrInputTooLarge, tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to read request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		middleware.HandleError(resp, middleware.ErrEmptyInput, http.StatusBadRequest)
		return
	}

	h.solve(req.Request.Context(), resp, models.SolveRequest{
		RequestID: req.QueryParameter("request_id"),
		Day:       day,
		Part:      part,
		Input:     string(body),
	})
}

func (h *Handler) solve(ctx context.Context, resp *restful.Response, solveRequest models.SolveRequest) {
	h.logger.Info().
		Str("request_id", solveRequest.RequestID).
		Int("day", solveRequest.Day).
		Int("part", solveRequest.Part).
		Int("input_bytes", len(solveRequest.Input)).
		Msg("Start solve")

	result, err := h.executor.Execute(ctx, solveRequest)
	if err != nil {
		middleware.HandleRequestError(resp, err, statusFor(err), result.ID)
		return
	}

	h.logger.Info().
		Str("request_id", result.ID).
		Str("solver", result.Solver).
		Int("answer", result.Answer).
		Msg("Solve complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/solvers
func (h *Handler) Solvers(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, SolversResponse{Solvers: h.solvers.List()})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrSolverNotFound):
		return http.StatusNotFound
	case puzzle.IsInputError(err), errors.Is(err, solver.ErrNoWinner):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func pathInt(req *restful.Request, name string) (int, error) {
	raw := req.PathParameter(name)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s=%q", middleware.ErrInvalidParam, name, raw)
	}
	return v, nil
}
