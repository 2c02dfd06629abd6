package wordpress

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx response from the upstream API. It covers
// every transport-level failure the gateway can classify; plain network
// errors surface as wrapped *url.Error instead.
type StatusError struct {
	Code     int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wordpress: %s returned status %d", e.Endpoint, e.Code)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
