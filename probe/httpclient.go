package probe

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// newHTTPClient creates a customized HTTP client with tuned transport
// settings and HTTP/2 support for the model API. Streaming responses can
// outlive ordinary request timeouts, so the client timeout stays generous
// and per-request deadlines come from contexts instead.
func newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   50,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	err := http2.ConfigureTransport(transport)
	if err != nil {
		panic(fmt.Sprintf("Failed to configure HTTP/2: %v", err))
	}

	return &http.Client{
		Transport: transport,
	}
}
