/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler with slog request/completion logging.

# Auth Guard

WithAuth wraps a handler behind session validation: missing, unknown, or
expired tokens are answered with 401 and a distinguishable message, so the
client can redirect to login. The validated operator rides on the request
context and is read back with CurrentUser.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON encoding,
error bodies ({error, message}), and request decoding.

# CORS

The CORS middleware reflects the request origin and answers preflight
OPTIONS requests.

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
