package api

import "github.com/s-pike/advent2021/internal/models"

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type SolversResponse struct {
	Solvers []models.SolverInfo `json:"solvers" description:"Registered solvers ordered by day and part"`
}
