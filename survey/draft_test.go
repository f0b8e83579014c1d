package survey

import (
	"testing"

	"github.com/opencivic/ward-survey/models"
)

func TestValidMobile(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"7123456789", true},
		{"8999999999", true},
		{"1234567890", false}, // leading digit below 6
		{"5876543210", false},
		{"98765", false},       // too short
		{"98765432100", false}, // too long
		{"987654321a", false},  // non-digit
		{" 9876543210", false}, // whitespace
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := ValidMobile(tt.number); got != tt.valid {
				t.Errorf("ValidMobile(%q) = %v, want %v", tt.number, got, tt.valid)
			}
		})
	}
}

func TestValidEBNumber(t *testing.T) {
	if !ValidEBNumber("123456789012") {
		t.Error("12-digit EB number should be valid")
	}
	if ValidEBNumber("12345678901") {
		t.Error("11-digit EB number should be invalid")
	}
	if ValidEBNumber("12345678901a") {
		t.Error("non-digit EB number should be invalid")
	}
}

func TestValidOwnerName(t *testing.T) {
	if !ValidOwnerName("Kumar Swamy") {
		t.Error("letters and spaces should be valid")
	}
	if ValidOwnerName("Kumar2") {
		t.Error("digits should be invalid")
	}
	if ValidOwnerName("   ") {
		t.Error("blank name should be invalid")
	}
}

func TestDraft_StepGating(t *testing.T) {
	d := NewDraft()

	// Empty step 1: errors name exactly the empty required fields
	errs, err := d.Next(models.DraftFields{})
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors for empty location step, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"ward_name", "street_name", "locality_name"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s", field)
		}
	}
	if d.Step() != StepLocation {
		t.Errorf("failed validation must not advance; step = %v", d.Step())
	}

	// Partial step 1: only the still-missing field is reported
	errs, _ = d.Next(models.DraftFields{WardName: "WARD-01", StreetName: "Main St"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if _, ok := errs["locality_name"]; !ok {
		t.Error("expected only locality_name to be reported")
	}

	// Complete step 1 advances
	errs, _ = d.Next(models.DraftFields{LocalityName: "Central"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.Step() != StepOwner {
		t.Errorf("step = %v, want StepOwner", d.Step())
	}
}

func TestDraft_OwnerStepPhoneRule(t *testing.T) {
	d := NewDraft()
	d.Next(models.DraftFields{WardName: "W", StreetName: "S", LocalityName: "L"})

	errs, _ := d.Next(models.DraftFields{OwnerName: "Kumar", PhoneNumber: "1234567890", TotalFloors: "2"})
	if errs["phone_number"] != "Please enter a valid 10-digit mobile number" {
		t.Errorf("expected mobile format error, got %v", errs)
	}
	if d.Step() != StepOwner {
		t.Error("invalid phone must block the owner step")
	}

	errs, _ = d.Next(models.DraftFields{PhoneNumber: "9876543210"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.Step() != StepCoordinates {
		t.Errorf("step = %v, want StepCoordinates", d.Step())
	}
}

func TestDraft_CoordinatesStep(t *testing.T) {
	d := &Draft{step: StepCoordinates}

	errs, _ := d.Next(models.DraftFields{Latitude: "13.0827", Longitude: "not-a-number"})
	if _, ok := errs["longitude"]; !ok {
		t.Errorf("non-numeric longitude should fail, got %v", errs)
	}

	errs, _ = d.Next(models.DraftFields{Longitude: "80.2707"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.Step() != StepBuilding {
		t.Errorf("step = %v, want StepBuilding", d.Step())
	}
}

func TestDraft_FinalStepGoesThroughSubmit(t *testing.T) {
	d := &Draft{step: StepBuilding}

	if _, err := d.Next(models.DraftFields{}); err != ErrFinalStep {
		t.Errorf("Next on the final step should return ErrFinalStep, got %v", err)
	}

	errs := d.Validate(models.DraftFields{BuildingUsage: "residential"})
	if _, ok := errs["building_structure"]; !ok {
		t.Errorf("expected building_structure error, got %v", errs)
	}

	errs = d.Validate(models.DraftFields{BuildingStructure: "RCC"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	d.MarkSubmitted()
	if d.Step() != StepSubmitted {
		t.Errorf("step = %v, want StepSubmitted", d.Step())
	}
}

func TestDraft_BackAlwaysPermitted(t *testing.T) {
	d := NewDraft()

	// Back on the first step is a no-op
	d.Back()
	if d.Step() != StepLocation {
		t.Errorf("step = %v, want StepLocation", d.Step())
	}

	d.Next(models.DraftFields{WardName: "W", StreetName: "S", LocalityName: "L"})
	if d.Step() != StepOwner {
		t.Fatalf("setup failed, step = %v", d.Step())
	}

	// Back does not validate: the owner step is incomplete but we still move
	d.Back()
	if d.Step() != StepLocation {
		t.Errorf("step = %v, want StepLocation after Back", d.Step())
	}
}

func TestDraft_MergeAccumulatesAcrossSteps(t *testing.T) {
	d := NewDraft()
	d.Next(models.DraftFields{WardName: "WARD-01", StreetName: "Main St", LocalityName: "Central"})
	d.Next(models.DraftFields{OwnerName: "Kumar", PhoneNumber: "9876543210", TotalFloors: "2"})

	f := d.Fields()
	if f.WardName != "WARD-01" || f.OwnerName != "Kumar" {
		t.Errorf("fields not accumulated: %+v", f)
	}
}

func TestGeoErrorMessage_Distinguishable(t *testing.T) {
	denied := GeoErrorMessage(GeoPermissionDenied)
	unavailable := GeoErrorMessage(GeoUnavailable)
	timeout := GeoErrorMessage(GeoTimeout)

	if denied == unavailable || denied == timeout || unavailable == timeout {
		t.Error("geolocation failure modes must have distinguishable messages")
	}
	if GeoErrorMessage(99) == "" {
		t.Error("unknown codes still need a message")
	}
}
