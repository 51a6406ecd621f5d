// Package http exposes the dish and order use cases over HTTP with echo.
//
// Every request and response body is wrapped in an envelope: payloads travel
// as {"data": ...} and failures as {"error": "<message>"}. Validation and
// lifecycle failures map to 400, unknown records and routes to 404.
package http
