package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tmuriuki/cashlink/internal/models"
	"github.com/tmuriuki/cashlink/internal/services"
)

func TestNearbyHandler(t *testing.T) {
	tests := []struct {
		name               string
		target             string
		setupMocks         func(mockFinder *MockNearbyFinder)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "successful query",
			target: "/agents/nearby?lat=5.6037&lon=-0.1870",
			setupMocks: func(mockFinder *MockNearbyFinder) {
				mockFinder.EXPECT().FindNearby(gomock.Any(), 5.6037, -0.1870, 0.0, "").
					Return([]models.NearbyAgent{{Code: "AGT-0042", DistanceKm: 1.24}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "agents",
		},
		{
			name:   "radius and service forwarded",
			target: "/agents/nearby?lat=5.6037&lon=-0.1870&radius_km=2&service=cash_out",
			setupMocks: func(mockFinder *MockNearbyFinder) {
				mockFinder.EXPECT().FindNearby(gomock.Any(), 5.6037, -0.1870, 2.0, "cash_out").
					Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "agents",
		},
		{
			name:               "missing coordinates",
			target:             "/agents/nearby",
			setupMocks:         func(mockFinder *MockNearbyFinder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "out of range coordinates",
			target: "/agents/nearby?lat=91&lon=0",
			setupMocks: func(mockFinder *MockNearbyFinder) {
				mockFinder.EXPECT().FindNearby(gomock.Any(), 91.0, 0.0, 0.0, "").
					Return(nil, services.ErrInvalidLocation)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "internal server error",
			target: "/agents/nearby?lat=5.6037&lon=-0.1870",
			setupMocks: func(mockFinder *MockNearbyFinder) {
				mockFinder.EXPECT().FindNearby(gomock.Any(), 5.6037, -0.1870, 0.0, "").
					Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFinder := NewMockNearbyFinder(ctrl)
			tt.setupMocks(mockFinder)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler := NewNearbyHandler(mockFinder, nil)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
