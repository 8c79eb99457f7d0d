package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrUnauthorized is returned when http response had 401 Unauthorized status.
	ErrUnauthorized = errors.New("response status is 401 Unauthorized")
)
