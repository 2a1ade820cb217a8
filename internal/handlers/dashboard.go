package handlers

import (
	"context"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
)

// StatisticsProvider defines the interface that the dashboard service must implement.
type StatisticsProvider interface {
	Statistics(ctx context.Context) (int64, int64, error)
}

// StatisticsResponse represents aggregate counters for the dashboard
// swagger:model StatisticsResponse
type StatisticsResponse struct {
	// Total number of registered users
	TotalUsers int64 `json:"totalUsers"`

	// Total number of cars
	TotalCars int64 `json:"totalCars"`
}

// NewDashboardHandler returns an HTTP handler exposing aggregate statistics.
// @Summary Dashboard statistics
// @Description Returns total user and car counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} handlers.StatisticsResponse "Aggregate counters"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/statistics [get]
func NewDashboardHandler(svc StatisticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totalUsers, totalCars, err := svc.Statistics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, StatisticsResponse{
			TotalUsers: totalUsers,
			TotalCars:  totalCars,
		})
	}
}
