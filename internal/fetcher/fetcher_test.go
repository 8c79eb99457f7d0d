package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent = "test/0.0.0"
	response  = `{"hello":"world"}`
	endpoint  = "/file"
)

func TestUnitFetchJSON(t *testing.T) {
	wantHeaders := map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}

	tests := map[string]struct {
		serverHandler http.Handler
		options       []fetcher.RequestOption
		wantBody      string
		wantErr       error
	}{
		"ok": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				assert.Equal(t, "1;2", req.URL.Query().Get("nm"), "should pass query params")
				wrt.WriteHeader(http.StatusOK)
				wrt.Write([]byte(response))
			}),
			wantBody: response,
		},
		"ok with bearer token": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, map[string]string{"Authorization": "Bearer secret"})
				wrt.WriteHeader(http.StatusOK)
				wrt.Write([]byte(response))
			}),
			options:  []fetcher.RequestOption{fetcher.WithBearerToken("secret")},
			wantBody: response,
		},
		"bad status error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.WriteHeader(http.StatusInternalServerError)
			}),
			wantErr: fetcher.ErrStatusNotOK,
		},
		"unauthorized error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.WriteHeader(http.StatusUnauthorized)
			}),
			wantErr: fetcher.ErrUnauthorized,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			fet := fetcher.NewFetcher(srv.Client(), userAgent)
			body, err := fet.FetchJSON(context.TODO(), srv.URL+endpoint, url.Values{"nm": {"1;2"}}, tt.options...)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantBody, string(body), "should return correct response")
		})
	}
}

func TestUnitFetchJSONObserve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	observer := &recordingObserver{}
	fet := fetcher.NewFetcher(srv.Client(), userAgent).Observe(observer)

	_, err := fet.FetchJSON(context.TODO(), srv.URL, nil)

	require.ErrorIs(t, err, fetcher.ErrStatusNotOK, "should return bad status error")
	assert.Equal(t, []int{http.StatusTeapot}, observer.statuses, "should observe response status")
}

type recordingObserver struct {
	statuses []int
}

func (o *recordingObserver) ObserveResponse(_ string, status int, _ float64) {
	o.statuses = append(o.statuses, status)
}

// validateHeaders checks that all expected headers are set.
func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
