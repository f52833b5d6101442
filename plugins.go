package courier

import "net/http"

type Plugin interface {
	Type() string
}

type LoggerPlugins interface {
	Plugin
	OnRequestStart(req *http.Request)
	OnRequestEnd(req *http.Request, res *http.Response)
	OnRequestError(req *http.Request, err error)
}
