package distance

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (m *MatrixQuerier) newRequest(
	ctx context.Context,
	source string,
	destination string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Single values despite the plural parameter names; the upstream
	// endpoint is matrix-shaped but only ever queried pairwise.
	q := req.URL.Query()
	q.Set("origins", source)
	q.Set("destinations", destination)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (m *MatrixQuerier) do(req *http.Request) (*http.Response, error) {
	resp, err := m.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// round2 rounds half away from zero at the second decimal.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
