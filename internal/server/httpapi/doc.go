// Package httpapi serves the classifier contract over HTTP under /api:
// POST /api/classify, GET /api/health and GET /api/info.
package httpapi
