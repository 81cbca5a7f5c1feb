// Package network builds the HTTP client used for every outbound request.
package network

import (
	"net/http"
	"time"

	"github.com/anisan-cli/animedex/key"
	"github.com/spf13/viper"
)

// New returns a client whose overall timeout follows api.timeout.
// A zero timeout leaves the request bounded only by its context.
func New() *http.Client {
	return &http.Client{
		Timeout:   time.Duration(viper.GetInt(key.APITimeout)) * time.Second,
		Transport: newTransport(),
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 16
	t.MaxIdleConnsPerHost = 8
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
