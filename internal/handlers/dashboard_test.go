package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockStatisticsProvider)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockStatisticsProvider) {
				m.EXPECT().
					Statistics(gomock.Any()).
					Return(int64(12), int64(34), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"totalUsers":12,"totalCars":34}`,
		},
		{
			name: "internal error",
			mockSetup: func(m *MockStatisticsProvider) {
				m.EXPECT().
					Statistics(gomock.Any()).
					Return(int64(0), int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error","errorCode":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStatisticsProvider(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/dashboard/statistics", nil)
			rr := httptest.NewRecorder()

			NewDashboardHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
