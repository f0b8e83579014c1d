/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - DraftFields: incremental multi-step survey fields
  - VerificationRequest: asst_det_id, owner_det, str_det, area, usage,
    eb_num, prof_tax, images

# Response Types

Types for JSON responses:

  - LoginResponse: data.authToken plus operator profile and wards
  - DraftResponse: draft_id, step, accumulated fields, per-field errors
  - SubmitDraftResponse: survey_id, message
  - VerificationResponse: verification_id, message
  - OptionsResponse: cascading option values
  - AssetSearchResponse / AssetDetailResponse: property records
  - DashboardSummary: counts, completion percentage, stat cards, daily chart
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: operator account with assigned wards
  - Session: token and issue time
  - Property: one flat location-hierarchy master record

# Constants

Building types:

	BuildingApartment   = "apartment"
	BuildingRowHouse    = "row_house"
	BuildingIndependent = "independent"

Building usages: residential, commercial, mixed, government, educational.
Roof structures: RCC, THATCHED, AC-SHEET.
Non-building parcel usages: parking, garden, playground, vacant.

MaxSurveyPhotos (3) caps photo attachments per submission.
*/
package models
