package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postal-distance-service/internal/adapters/distance"
	"postal-distance-service/internal/api/dto"
)

// testQuerier returns a mock with three reachable sources and 75050
// deliberately missing, mirroring a partially failing batch.
func testQuerier() *distance.MockQuerier {
	return distance.NewMockQuerier([]distance.MockPair{
		{From: "95131", To: "60601", Km: 12.35, Miles: 7.67, Mins: 11.3},
		{From: "32220", To: "60601", Km: 25.4, Miles: 15.78, Mins: 31.2},
		{From: "07305", To: "60601", Km: 18.75, Miles: 11.65, Mins: 22.0},
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(testQuerier(), "test-secret", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBatchEndpointComputesRecords(t *testing.T) {
	router := NewRouter(testQuerier(), "test-secret", "")

	body := `{"sources":["95131","32220","07305","75050"],"destination":"60601"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res dto.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Records, 4)

	// Input order is preserved regardless of outcome.
	for i, source := range []string{"95131", "32220", "07305", "75050"} {
		assert.Equal(t, source, res.Records[i].Source)
	}

	nearest := res.Records[0]
	require.NotNil(t, nearest.DistanceKm)
	assert.Equal(t, 12.35, *nearest.DistanceKm)
	assert.Equal(t, 7.67, *nearest.DistanceMiles)
	assert.Equal(t, 11.3, *nearest.DurationMins)
	assert.True(t, nearest.IsMin)

	for _, rec := range res.Records[1:3] {
		assert.False(t, rec.IsMin)
		assert.Empty(t, rec.Error)
	}

	failed := res.Records[3]
	assert.Nil(t, failed.DistanceKm)
	assert.NotEmpty(t, failed.Error)
	assert.False(t, failed.IsMin)
}

func TestBatchEndpointRejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing destination", `{"sources":["95131"]}`},
		{"no sources", `{"sources":[],"destination":"60601"}`},
		{"too many sources", `{"sources":["1","2","3","4","5"],"destination":"60601"}`},
		{"unknown field", `{"sources":["95131"],"destination":"60601","extra":true}`},
		{"trailing object", `{"sources":["95131"],"destination":"60601"}{}`},
		{"not json", `sources=95131`},
	}

	router := NewRouter(testQuerier(), "test-secret", "")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFormQueryRendersResults(t *testing.T) {
	router := NewRouter(testQuerier(), "test-secret", "../../templates/*")

	form := url.Values{
		"source1":     {"95131"},
		"source2":     {"32220"},
		"source3":     {"07305"},
		"source4":     {"75050"},
		"destination": {"60601"},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "12.35")
	assert.Contains(t, body, "7.67")
	assert.Contains(t, body, "11.30")
	assert.Contains(t, body, `class="nearest"`)
	assert.Contains(t, body, "missing pair")
}

func TestFormQueryRequiresPresence(t *testing.T) {
	router := NewRouter(testQuerier(), "test-secret", "../../templates/*")

	cases := []struct {
		name string
		form url.Values
		want string
	}{
		{
			"missing destination",
			url.Values{"source1": {"95131"}},
			"destination postal code is required",
		},
		{
			"missing sources",
			url.Values{"destination": {"60601"}},
			"at least one source postal code is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	router := NewRouter(testQuerier(), "test-secret", "../../templates/*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)

	// Replay the session cookie: the dark preference must stick.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req2.AddCookie(c)
	}
	router.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "theme-dark")
}
