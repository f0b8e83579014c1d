package survey

import (
	"errors"
	"strings"

	"github.com/opencivic/ward-survey/models"
)

// ErrPhotoLimit is returned when a fourth photo is attached.
var ErrPhotoLimit = errors.New("photo limit reached")

// PhotoLimitMessage is the user-visible rejection for exceeding the cap.
const PhotoLimitMessage = "You can only upload up to 3 photos"

// MinProfTaxIDLen is the shortest accepted Professional Tax ID.
const MinProfTaxIDLen = 5

// PhotoSet holds the geotagged photos for one submission, capped at
// models.MaxSurveyPhotos. Adding past the cap is rejected and leaves the
// attached set untouched.
type PhotoSet struct {
	photos []models.CapturedImage
}

func (p *PhotoSet) Add(img models.CapturedImage) error {
	if len(p.photos) >= models.MaxSurveyPhotos {
		return ErrPhotoLimit
	}
	p.photos = append(p.photos, img)
	return nil
}

// Remove drops the photo at index i; out-of-range indexes are ignored.
func (p *PhotoSet) Remove(i int) {
	if i < 0 || i >= len(p.photos) {
		return
	}
	p.photos = append(p.photos[:i], p.photos[i+1:]...)
}

func (p *PhotoSet) Len() int {
	return len(p.photos)
}

func (p *PhotoSet) Items() []models.CapturedImage {
	return p.photos
}

var buildingTypes = map[string]bool{
	models.BuildingApartment:   true,
	models.BuildingRowHouse:    true,
	models.BuildingIndependent: true,
}

var parcelUsages = map[string]bool{
	models.ParcelParking:    true,
	models.ParcelGarden:     true,
	models.ParcelPlayground: true,
	models.ParcelVacant:     true,
}

// ResolveOwnerName returns the owner name to record: the one already on the
// property when the operator confirmed it, otherwise the corrected name
// from the payload.
func ResolveOwnerName(req models.VerificationRequest, prop models.Property) string {
	if req.OwnerVerified {
		return strings.TrimSpace(prop.OwnerName)
	}
	return strings.TrimSpace(req.OwnerDet.Name)
}

// ValidateVerification checks the single overlay payload collected on site.
// The returned map is keyed by field and empty when the payload is
// acceptable.
func ValidateVerification(req models.VerificationRequest) map[string]string {
	errs := map[string]string{}

	if !req.OwnerVerified {
		name := strings.TrimSpace(req.OwnerDet.Name)
		if name == "" {
			errs["owner_name"] = "Please enter the new owner name"
		} else if !ValidOwnerName(name) {
			errs["owner_name"] = "Owner name may contain letters and spaces only"
		}
	}

	if !ValidMobile(req.OwnerDet.Mobile) {
		errs["mobile"] = "Please enter a valid 10-digit mobile number"
	}

	if req.IsBuilding {
		if strings.TrimSpace(req.Area) == "" {
			errs["area"] = "Build Area as Observed is required"
		}
		if req.Usage == "" {
			errs["usage"] = "Building usage is required"
		}
		if !ValidEBNumber(req.EBNumber) {
			errs["eb_num"] = "Please enter a valid 12-digit EB number"
		}

		// Professional tax applies to commercial and mixed usage only
		if req.Usage == models.UsageCommercial || req.Usage == models.UsageMixed {
			if req.ProfTax != nil && req.ProfTax.HasTax {
				taxID := strings.TrimSpace(req.ProfTax.TaxID)
				if taxID == "" {
					errs["prof_tax_id"] = "Professional Tax ID is required when Professional Tax is enabled"
				} else if len(taxID) < MinProfTaxIDLen {
					errs["prof_tax_id"] = "Please enter a valid Professional Tax ID"
				}
			}
		}

		if !buildingTypes[req.StrDet.Type] {
			errs["building_type"] = "Please select a building type"
		}

		switch req.StrDet.Type {
		case models.BuildingApartment:
			if req.StrDet.Floors == "" {
				errs["total_floors"] = "Please select total number of floors"
			}
			if req.StrDet.PropFloor == "" {
				errs["prop_floor"] = "Please select the floor number"
			}
			// Roof structure matters only when the surveyed unit is on top
			if req.StrDet.Floors != "" && req.StrDet.PropFloor == req.StrDet.Floors && req.StrDet.RoofStructure == "" {
				errs["roof_structure"] = "Roof structure is required for top floor"
			}
		case models.BuildingIndependent, models.BuildingRowHouse:
			if req.StrDet.RoofStructure == "" {
				errs["roof_structure"] = "Roof structure is required"
			}
		}
	} else {
		if !parcelUsages[req.CurrentUsage] {
			errs["current_usage"] = "Please select current usage"
		}
	}

	if len(req.Images) == 0 {
		errs["photos"] = "At least one property photo is required"
	} else if len(req.Images) > models.MaxSurveyPhotos {
		errs["photos"] = PhotoLimitMessage
	} else {
		for _, img := range req.Images {
			if strings.TrimSpace(img.Latitude) == "" || strings.TrimSpace(img.Longitude) == "" {
				errs["photos"] = "Each photo must include its captured location"
				break
			}
		}
	}

	return errs
}
