package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/desafio/car-users-api/internal/middlewares"
	"github.com/desafio/car-users-api/internal/services"
)

func TestCarDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		path          string
		authenticated bool
		mockSetup     func(m *MockCarDeleter)
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "success",
			path:          "/cars/10",
			authenticated: true,
			mockSetup: func(m *MockCarDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "johndoe", int64(10)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "unauthenticated",
			path:          "/cars/10",
			authenticated: false,
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"Unauthorized","errorCode":401}`,
		},
		{
			name:          "car not owned",
			path:          "/cars/999",
			authenticated: true,
			mockSetup: func(m *MockCarDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "johndoe", int64(999)).
					Return(services.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Car not found","errorCode":404}`,
		},
		{
			name:          "owner no longer exists",
			path:          "/cars/10",
			authenticated: true,
			mockSetup: func(m *MockCarDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "johndoe", int64(10)).
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"User not found","errorCode":404}`,
		},
		{
			name:          "non numeric id",
			path:          "/cars/abc",
			authenticated: true,
			expectedCode:  http.StatusNotFound,
			expectedBody:  `{"message":"Car not found","errorCode":404}`,
		},
		{
			name:          "internal error",
			path:          "/cars/10",
			authenticated: true,
			mockSetup: func(m *MockCarDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), "johndoe", int64(10)).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error","errorCode":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCarDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/cars/{id}", NewCarDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.SetLoginToContext(req.Context(), "johndoe"))
			}
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
