package getCurrent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"confsched/internal/http-server/handlers/schedule/getCurrent/mocks"
	"confsched/internal/lib/logger/handlers/slogdiscard"
	"confsched/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	changeover := models.Event{
		Start: "2000-01-01T02:00:00",
		End:   "2000-01-01T03:00:00",
		Name:  "Room Changeover",
		Kind:  models.KindChangeover,
		Rooms: []string{"Larry (Stooge)", "Moe (Stooge)"},
	}

	testCases := []struct {
		name           string
		at             string
		mockSetup      func(mock *mocks.CurrentProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Explicit as-of during changeover",
			at:   "2000-01-01T02:50:00",
			mockSetup: func(mock *mocks.CurrentProvider) {
				mock.On("CurrentByRoom", "2000-01-01T02:50:00").Return(map[string]models.Event{
					"larry": changeover,
					"moe":   changeover,
				})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp CurrentResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "2000-01-01T02:50:00", resp.AsOf)
				require.Len(t, resp.Current, 2)
				assert.Equal(t, "Room Changeover", resp.Current["larry"].Name)
				assert.Equal(t, "Room Changeover", resp.Current["moe"].Name)
			},
		},
		{
			name: "Nothing on",
			at:   "2000-01-01T09:00:00",
			mockSetup: func(mock *mocks.CurrentProvider) {
				mock.On("CurrentByRoom", "2000-01-01T09:00:00").Return(map[string]models.Event{})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp CurrentResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Current)
			},
		},
		{
			name:           "Malformed as-of",
			at:             "half past two",
			mockSetup:      func(mock *mocks.CurrentProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"at must be a timestamp like 2000-01-01T09:00:00"}`, body)
			},
		},
		{
			name:           "Date without time",
			at:             "2000-01-01",
			mockSetup:      func(mock *mocks.CurrentProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"at must be a timestamp like 2000-01-01T09:00:00"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewCurrentProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("GET", "/schedule/current?at="+tc.at, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockProvider.AssertExpectations(t)
		})
	}
}

func TestGetCurrentHandlerDefaultsToNow(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockProvider := mocks.NewCurrentProvider(t)
	mockProvider.On("CurrentByRoom", mock.AnythingOfType("string")).Return(map[string]models.Event{})

	handler := New(logger, mockProvider)

	req, err := http.NewRequest("GET", "/schedule/current", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp CurrentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AsOf)

	mockProvider.AssertExpectations(t)
}
