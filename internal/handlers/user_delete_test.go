package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/desafio/car-users-api/internal/services"
)

func TestUserDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			path: "/users/7",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "not found",
			path: "/users/999",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(999)).
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"User not found","errorCode":404}`,
		},
		{
			name:         "non numeric id",
			path:         "/users/abc",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"User not found","errorCode":404}`,
		},
		{
			name: "internal error",
			path: "/users/7",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7)).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error","errorCode":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/users/{id}", NewUserDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
