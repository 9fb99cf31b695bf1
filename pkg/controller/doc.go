// Package controller contains the net/http middlewares wrapped around the API
// router: CORS, request scoped logging and request metrics. PprofMux exposes
// the runtime profiler.
package controller
