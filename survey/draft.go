package survey

import (
	"errors"
	"regexp"
	"strings"

	"github.com/opencivic/ward-survey/models"
)

// Step is a stage of the multi-step field-survey form.
type Step int

const (
	StepLocation Step = iota + 1
	StepOwner
	StepCoordinates
	StepBuilding
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepOwner:
		return "owner"
	case StepCoordinates:
		return "coordinates"
	case StepBuilding:
		return "building"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// ErrFinalStep is returned by Next on the terminal step; the caller must go
// through Submit instead.
var ErrFinalStep = errors.New("draft is on the final step")

var (
	mobilePattern    = regexp.MustCompile(`^[6-9]\d{9}$`)
	ownerNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	ebNumberPattern  = regexp.MustCompile(`^\d{12}$`)
	numericPattern   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ValidMobile reports whether the value is an Indian mobile number:
// exactly 10 digits, first digit 6-9.
func ValidMobile(v string) bool {
	return mobilePattern.MatchString(v)
}

// ValidOwnerName allows letters and spaces only, and at least one letter.
func ValidOwnerName(v string) bool {
	return strings.TrimSpace(v) != "" && ownerNamePattern.MatchString(v)
}

// ValidEBNumber requires exactly 12 digits.
func ValidEBNumber(v string) bool {
	return ebNumberPattern.MatchString(v)
}

func validNumeric(v string) bool {
	return numericPattern.MatchString(v)
}

// Geolocation failure codes, matching the browser geolocation API.
const (
	GeoPermissionDenied = 1
	GeoUnavailable      = 2
	GeoTimeout          = 3
)

// GeoErrorMessage maps a geolocation failure code to its remediation
// message. Each failure mode gets a distinguishable message.
func GeoErrorMessage(code int) string {
	switch code {
	case GeoPermissionDenied:
		return "Location permission denied. Allow location access in your browser settings and try again."
	case GeoUnavailable:
		return "Location unavailable. Move to an open area and try again."
	case GeoTimeout:
		return "Timed out while determining location. Please try again."
	}
	return "Unable to retrieve location"
}

// Draft accumulates the multi-step survey form. It lives in memory for the
// duration of one form session and is discarded after submission.
type Draft struct {
	step   Step
	fields models.DraftFields
}

// NewDraft starts at the location step with no fields set.
func NewDraft() *Draft {
	return &Draft{step: StepLocation}
}

func (d *Draft) Step() Step {
	return d.step
}

func (d *Draft) Fields() models.DraftFields {
	return d.fields
}

// merge overlays the non-empty incoming fields onto the draft.
func (d *Draft) merge(f models.DraftFields) {
	if f.WardName != "" {
		d.fields.WardName = f.WardName
	}
	if f.StreetName != "" {
		d.fields.StreetName = f.StreetName
	}
	if f.LocalityName != "" {
		d.fields.LocalityName = f.LocalityName
	}
	if f.OwnerName != "" {
		d.fields.OwnerName = f.OwnerName
	}
	if f.PhoneNumber != "" {
		d.fields.PhoneNumber = f.PhoneNumber
	}
	if f.TotalFloors != "" {
		d.fields.TotalFloors = f.TotalFloors
	}
	if f.Latitude != "" {
		d.fields.Latitude = f.Latitude
	}
	if f.Longitude != "" {
		d.fields.Longitude = f.Longitude
	}
	if f.BuildingUsage != "" {
		d.fields.BuildingUsage = f.BuildingUsage
	}
	if f.BuildingStructure != "" {
		d.fields.BuildingStructure = f.BuildingStructure
	}
}

// Validate merges the fields and runs the current step's validator without
// advancing. The returned map is empty when the step is complete.
func (d *Draft) Validate(f models.DraftFields) map[string]string {
	d.merge(f)
	return validateStep(d.step, d.fields)
}

// Next merges the fields and advances one step if the current step's
// validator passes. On validation failure the step does not change and the
// error set names exactly the failed required fields. The terminal step is
// advanced through Submit, not Next.
func (d *Draft) Next(f models.DraftFields) (map[string]string, error) {
	if d.step >= StepBuilding {
		return nil, ErrFinalStep
	}
	errs := d.Validate(f)
	if len(errs) > 0 {
		return errs, nil
	}
	d.step++
	return nil, nil
}

// Back moves one step backwards without validating. A no-op on the first
// step and after submission.
func (d *Draft) Back() {
	if d.step > StepLocation && d.step <= StepBuilding {
		d.step--
	}
}

// MarkSubmitted transitions the draft to its terminal state. Called only
// after the accumulated record has been persisted; a failed persist leaves
// the draft on the building step for manual re-submission.
func (d *Draft) MarkSubmitted() {
	d.step = StepSubmitted
}

func validateStep(step Step, f models.DraftFields) map[string]string {
	errs := map[string]string{}
	switch step {
	case StepLocation:
		if f.WardName == "" {
			errs["ward_name"] = "Ward name is required"
		}
		if f.StreetName == "" {
			errs["street_name"] = "Street name is required"
		}
		if f.LocalityName == "" {
			errs["locality_name"] = "Locality name is required"
		}
	case StepOwner:
		if f.OwnerName == "" {
			errs["owner_name"] = "Owner name is required"
		}
		if f.PhoneNumber == "" {
			errs["phone_number"] = "Phone number is required"
		} else if !ValidMobile(f.PhoneNumber) {
			errs["phone_number"] = "Please enter a valid 10-digit mobile number"
		}
		if f.TotalFloors == "" {
			errs["total_floors"] = "Total floors is required"
		}
	case StepCoordinates:
		if f.Latitude == "" {
			errs["latitude"] = "Latitude is required"
		} else if !validNumeric(f.Latitude) {
			errs["latitude"] = "Latitude must be a number"
		}
		if f.Longitude == "" {
			errs["longitude"] = "Longitude is required"
		} else if !validNumeric(f.Longitude) {
			errs["longitude"] = "Longitude must be a number"
		}
	case StepBuilding:
		if f.BuildingUsage == "" {
			errs["building_usage"] = "Building usage is required"
		}
		if f.BuildingStructure == "" {
			errs["building_structure"] = "Building structure is required"
		}
	}
	return errs
}
