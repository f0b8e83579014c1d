package handlers

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/opencivic/ward-survey/models"
	"github.com/opencivic/ward-survey/testutil"
)

// masterPath builds a cascade request target; names like "Test Corporation"
// must be escaped or the raw request line is malformed.
func masterPath(segments ...string) string {
	path := "/master"
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

func TestGetWards_DistinctPerOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	// Two properties in Ward 1, one in Ward 2, one in another org
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Park Rd", "Ravi Shankar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 2", "Zone B", "North", "Hill Rd", "Meena Iyer")
	testutil.SeedProperty(t, db, "Other Corporation", "Ward 9", "Zone X", "West", "Lake Rd", "Suresh Babu")

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", masterPath("Test Corporation"), nil, nil)
	req.SetPathValue("org", "Test Corporation")
	w := httptest.NewRecorder()

	handler.GetWards(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.OptionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 2 {
		t.Fatalf("Expected 2 wards, got %d: %+v", len(resp.Data), resp.Data)
	}
	if resp.Data[0].Name != "Ward 1" || resp.Data[1].Name != "Ward 2" {
		t.Errorf("Unexpected ward order: %+v", resp.Data)
	}
}

func TestGetAreas_ScopedToWard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone B", "North", "Hill Rd", "Ravi Shankar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 2", "Zone C", "East", "Lake Rd", "Meena Iyer")

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", masterPath("Test Corporation", "id-Ward 1"), nil, nil)
	req.SetPathValue("org", "Test Corporation")
	req.SetPathValue("wardId", "id-Ward 1")
	w := httptest.NewRecorder()

	handler.GetAreas(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.OptionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 2 {
		t.Fatalf("Expected 2 areas, got %d: %+v", len(resp.Data), resp.Data)
	}
	for _, opt := range resp.Data {
		if opt.Name == "Zone C" {
			t.Error("Zone C belongs to Ward 2 and must not appear")
		}
	}
}

func TestGetAreas_UnknownWardIsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", masterPath("Test Corporation", "id-Ward 99"), nil, nil)
	req.SetPathValue("org", "Test Corporation")
	req.SetPathValue("wardId", "id-Ward 99")
	w := httptest.NewRecorder()

	handler.GetAreas(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.OptionsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Data) != 0 {
		t.Errorf("Expected empty option list, got %+v", resp.Data)
	}
}

func TestGetStreets_FullCascade(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Park Rd", "Ravi Shankar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "North", "Hill Rd", "Meena Iyer")

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", masterPath("Test Corporation", "id-Ward 1", "id-Zone A", "id-Central"), nil, nil)
	req.SetPathValue("org", "Test Corporation")
	req.SetPathValue("wardId", "id-Ward 1")
	req.SetPathValue("areaId", "id-Zone A")
	req.SetPathValue("localityId", "id-Central")
	w := httptest.NewRecorder()

	handler.GetStreets(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.OptionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 2 {
		t.Fatalf("Expected 2 streets, got %d: %+v", len(resp.Data), resp.Data)
	}
	if resp.Data[0].Name != "Main St" || resp.Data[1].Name != "Park Rd" {
		t.Errorf("Unexpected streets: %+v", resp.Data)
	}
}

func TestSearchAssets_ByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	want := testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Park Rd", "Ravi Shankar")

	handler := NewMasterHandler(db, cfg)

	query := url.Values{}
	query.Set("org_name", "Test Corporation")
	query.Set("ward_id", "id-Ward 1")
	query.Set("street_id", "id-Main St")
	req := testutil.MakeRequest("GET", "/asset?"+query.Encode(), nil, nil)
	w := httptest.NewRecorder()

	handler.SearchAssets(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.AssetSearchResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 property, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != want {
		t.Errorf("Expected property %s, got %s", want, resp.Data[0].ID)
	}
}

func TestSearchAssets_ByNamesCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	want := testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 2", "Zone B", "North", "Hill Rd", "Ravi Shankar")

	handler := NewMasterHandler(db, cfg)

	query := url.Values{}
	query.Set("org_name", "Test Corporation")
	query.Set("ward", "WARD 1")
	query.Set("street", " main st ")
	req := testutil.MakeRequest("GET", "/asset?"+query.Encode(), nil, nil)
	w := httptest.NewRecorder()

	handler.SearchAssets(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.AssetSearchResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 property, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != want {
		t.Errorf("Expected property %s, got %s", want, resp.Data[0].ID)
	}
}

func TestSearchAssets_RequiresOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/asset?"+url.Values{"ward_id": {"id-Ward 1"}}.Encode(), nil, nil)
	w := httptest.NewRecorder()

	handler.SearchAssets(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestGetAssetDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	id := testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/asset/detail/"+id, nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	handler.GetAssetDetail(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.AssetDetailResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Data.OwnerName != "Asha Kumar" {
		t.Errorf("Unexpected owner: %s", resp.Data.OwnerName)
	}
}

func TestGetAssetDetail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	handler := NewMasterHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/asset/detail/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetAssetDetail(w, req)
	testutil.AssertStatus(t, w, 404)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Property not found" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}
}
