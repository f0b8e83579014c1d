/*
Package survey holds the form logic of the portal: the multi-step
field-survey draft, the verification payload rules, and the shared field
validators.

# Draft State Machine

A Draft walks StepLocation → StepOwner → StepCoordinates → StepBuilding →
StepSubmitted. Next merges the step's fields and advances only when the
step's required-field validator passes; on failure the step is unchanged and
the error map names exactly the failed fields. Back never validates and is
always permitted (a no-op on the first step). The terminal transition goes
through MarkSubmitted after the caller has persisted the record, so a failed
persist leaves the draft editable for a manual retry.

# Validators

	ValidMobile("9876543210")  // ^[6-9]\d{9}$
	ValidEBNumber("123456789012")  // exactly 12 digits
	ValidOwnerName("Kumar Swamy")  // letters and spaces only

# Verification

ValidateVerification applies the on-site rules: corrected owner name when
not verified, mobile format, and the building branch (EB number, observed
area, usage, building type; apartments need floor counts and a roof
structure only on the top floor; independent and row houses always need the
roof structure; non-building parcels need a current-usage value). Photos:
one required, at most three, each with captured coordinates.

# Photos

PhotoSet caps attachments at three; a fourth Add returns ErrPhotoLimit and
leaves the set untouched. PhotoLimitMessage is the user-visible text.

# Geolocation

GeoErrorMessage maps browser geolocation failure codes (permission denied /
unavailable / timeout) to distinguishable remediation messages.
*/
package survey
