/*
Package handlers contains HTTP request handlers for the ward survey API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Login, logout, and current-user lookup
  - MasterHandler: Cascading location options and property search
  - SurveyHandler: Field survey drafts and property verification
  - DashboardHandler: Completion counts and activity summaries

Handlers are created via constructor functions that accept *sql.DB and Config:

	surveyHandler := handlers.NewSurveyHandler(db, cfg)

# Location Cascade

Dropdown options narrow level by level; each endpoint scopes to the path
segments above it:

	GET /master/{org}                                → wards
	GET /master/{org}/{wardId}                       → areas
	GET /master/{org}/{wardId}/{areaId}              → localities
	GET /master/{org}/{wardId}/{areaId}/{localityId} → streets

Property search accepts the resolved ids (or trimmed, case-insensitive
names) as query parameters:

	GET /asset?org_name=...&ward_id=...&street_id=...
	GET /asset/detail/{id}

# Survey Drafts

A draft is an in-memory multi-step form session. Nothing is persisted
until the final submit succeeds:

	POST   /survey/drafts              → create
	POST   /survey/drafts/{id}/next    → validate current step, advance
	POST   /survey/drafts/{id}/back    → step back, no validation
	POST   /survey/drafts/{id}/submit  → persist as field_survey row
	DELETE /survey/drafts/{id}          → discard

# Verification

Property verification is a single POST carrying the full payload,
including up to three geotagged photos inlined as base64:

	POST /survey

The verification row and its photos are written in one transaction.

All survey and dashboard operations require a session token in the
Authorization header.
*/
package handlers
