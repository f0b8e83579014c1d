/*
Package main provides the entry point for the Ward Survey API server.

Ward Survey is the backend for a municipal property-survey portal: operator
login, cascading ward/area/locality/street lookups, a multi-step field-survey
workflow, property verification with geotagged photos, and a dashboard of
survey statistics.

# Starting the Server

The server runs against sqlite out of the box:

	go run . --bootstrap-user admin --bootstrap-pass changeme

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Settings (flags or environment, .env supported):

  - PORT (-p): server port (default: 4180)
  - DATABASE_URL (-d): connection string (default: file:wardsurvey.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ORG_NAME (--org): organisation name for bootstrap data
  - BOOTSTRAP_USER / BOOTSTRAP_PASS: operator account created at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, master data, assets, surveys, dashboard)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth guard, CORS, logging, JSON helpers
  - models: request/response types and survey enumerations
  - auth: password hashing and session lifecycle
  - locations: cascading location filter engine
  - survey: multi-step draft state machine and verification validation
  - db: schema creation and user bootstrap
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
