package client

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxRedirects = 10

// createHTTPClient returns base, or a tuned client when base is nil. The
// returned client never sends a Referer on redirects.
func createHTTPClient(base *http.Client, tracing bool) *http.Client {
	var hc http.Client
	if base != nil {
		hc = *base
	} else {
		hc = http.Client{Transport: createHTTPTransport()}
	}

	if hc.CheckRedirect == nil {
		hc.CheckRedirect = noReferrer
	}

	if tracing {
		hc.Transport = otelhttp.NewTransport(hc.Transport)
	}

	return &hc
}

func createHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   100,
		MaxConnsPerHost:       100,
	}
}

func noReferrer(req *http.Request, via []*http.Request) error {
	req.Header.Del("Referer")
	if len(via) >= maxRedirects {
		return errors.Errorf("stopped after %d redirects", maxRedirects)
	}
	return nil
}
