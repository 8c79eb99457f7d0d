package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// ResponseObserver is notified about every received http response.
type ResponseObserver interface {
	ObserveResponse(host string, status int, seconds float64)
}

// RequestOption customizes single request.
type RequestOption func(r *resty.Request)

// Fetcher builds http requests and fetches JSON documents via http.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	restyClient := resty.NewWithClient(client).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Fetcher{
		client: restyClient,
	}
}

// Observe registers observer called after every response.
func (f *Fetcher) Observe(observer ResponseObserver) *Fetcher {
	f.client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		host := ""
		if resp.RawResponse != nil && resp.RawResponse.Request != nil {
			host = resp.RawResponse.Request.URL.Host
		}
		observer.ObserveResponse(host, resp.StatusCode(), resp.Time().Seconds())
		return nil
	})

	return f
}

// FetchJSON returns body of GET response from provided url with query params.
// It returns ErrUnauthorized for 401 responses and ErrStatusNotOK for other non 200 responses.
func (f *Fetcher) FetchJSON(ctx context.Context, rawURL string, query url.Values, ops ...RequestOption) ([]byte, error) {
	req := f.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query)

	for _, op := range ops {
		op(req)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode())
	}
}

// WithBearerToken sets Authorization header with bearer token.
func WithBearerToken(token string) RequestOption {
	return func(r *resty.Request) {
		r.SetAuthToken(token)
	}
}
