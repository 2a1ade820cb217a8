package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
)

const (
	defaultPageSize = 10
	defaultSortBy   = "id"
)

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	List(ctx context.Context, page, size int, sortBy string) ([]models.UserWithCars, int64, error)
}

// NewUserListHandler returns an HTTP handler listing users with pagination.
// @Summary List users
// @Description Returns a page of users with their cars. Total count and page info are exposed in X-Total-Count, X-Page-Number and X-Page-Size headers.
// @Tags users
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(id)
// @Success 200 {array} handlers.UserResponse "Page of users"
// @Router /users [get]
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 0 {
			page = 0
		}
		size, err := strconv.Atoi(r.URL.Query().Get("size"))
		if err != nil || size <= 0 {
			size = defaultPageSize
		}
		sortBy := r.URL.Query().Get("sortBy")
		if sortBy == "" {
			sortBy = defaultSortBy
		}

		users, total, err := svc.List(r.Context(), page, size, sortBy)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toUserResponse(u.User, u.Cars))
		}

		w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
		w.Header().Set("X-Page-Number", strconv.Itoa(page))
		w.Header().Set("X-Page-Size", strconv.Itoa(size))
		writeJSON(w, http.StatusOK, resp)
	}
}
