/*
Package router defines HTTP routes for the ward survey API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication:

	POST /api/v1/login  - Create a session
	POST /api/v1/logout - Invalidate the session
	GET  /api/v1/me     - Current user profile

Location cascade and property lookup (authenticated):

	GET /master/{org}                                - Wards
	GET /master/{org}/{wardId}                       - Areas
	GET /master/{org}/{wardId}/{areaId}              - Localities
	GET /master/{org}/{wardId}/{areaId}/{localityId} - Streets
	GET /asset                                       - Search properties
	GET /asset/detail/{id}                           - Property detail

Field survey drafts (authenticated):

	POST   /survey/drafts             - Start a draft
	GET    /survey/drafts/{id}        - Current step and fields
	POST   /survey/drafts/{id}/next   - Validate and advance
	POST   /survey/drafts/{id}/back   - Step back
	POST   /survey/drafts/{id}/submit - Persist the survey
	DELETE /survey/drafts/{id}        - Discard

Verification and dashboard (authenticated):

	POST /survey    - Submit a property verification
	GET  /dashboard/summary - Completion counts and daily activity

# Middleware

Every route is wrapped in request logging. Protected routes additionally
pass through session authentication; the resolved user is available via
middleware.CurrentUser.
*/
package router
