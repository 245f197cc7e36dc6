package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/seedledger/internal/accounts"
	"github.com/localnerve/seedledger/internal/handlers"
	"github.com/localnerve/seedledger/internal/middleware"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/records"
	"github.com/localnerve/seedledger/internal/services"
	"github.com/localnerve/seedledger/internal/storage/memory"
	"github.com/localnerve/seedledger/internal/testutil"
	"github.com/shopspring/decimal"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	backend := memory.New()
	rec := records.New(backend)
	dir := accounts.NewDirectory(backend, rec, nil)
	ws := services.NewWorkspace(rec)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.RequestID())
	handlers.Register(app.Group("/api"), dir, ws, 5)
	return app
}

func signup(t *testing.T, app *fiber.App, username string) {
	t.Helper()
	resp := testutil.Do(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"password": "secret",
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
}

func TestAccountFlow(t *testing.T) {
	app := setupApp(t)

	var status handlers.AccountsStatus
	resp := testutil.Do(t, app, http.MethodGet, "/api/accounts", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &status)
	if status.HasAccounts {
		t.Error("Expected no accounts on a fresh store")
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/auth/session", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNoContent)
	testutil.AssertNoContent(t, resp)

	signup(t, app, "ravi")

	var session map[string]interface{}
	resp = testutil.Do(t, app, http.MethodGet, "/api/auth/session", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &session)
	if session["username"] != "ravi" || session["id"] != float64(1) {
		t.Errorf("Unexpected session: %v", session)
	}

	resp = testutil.Do(t, app, http.MethodPost, "/api/auth/logout", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNoContent)

	resp = testutil.Do(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "ravi",
		"password": "wrong",
	})
	testutil.AssertStatus(t, resp, fiber.StatusUnauthorized)

	resp = testutil.Do(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": "secret",
	})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = testutil.Do(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "ravi",
		"password": "secret",
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = testutil.Do(t, app, http.MethodGet, "/api/accounts", nil)
	testutil.ParseJSON(t, resp, &status)
	if !status.HasAccounts || status.Count != 1 {
		t.Errorf("Expected one account, got %+v", status)
	}
}

func TestSignupErrors(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")

	resp := testutil.Do(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "ravi",
		"password": "other",
	})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)

	resp = testutil.Do(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "   ",
		"password": "x",
	})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestRecordRoutesRequireSession(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/farmers", "/api/payments", "/api/dashboard", "/api/search?q=a"} {
		resp := testutil.Do(t, app, http.MethodGet, path, nil)
		testutil.AssertStatus(t, resp, fiber.StatusForbidden)

		var body map[string]interface{}
		testutil.ParseJSON(t, resp, &body)
		if body["type"] != "data.authorization.user" {
			t.Errorf("%s: unexpected error type %v", path, body["type"])
		}
		if body["requestId"] == nil {
			t.Errorf("%s: expected a requestId in the error body", path)
		}
	}
}

func TestFarmerCRUD(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")

	farmer := map[string]interface{}{
		"name":     "Ravi Kumar",
		"contact":  "9876543210",
		"address":  "Village Road",
		"farmSize": "5 acres",
		"crops":    "Paddy",
	}
	resp := testutil.Do(t, app, http.MethodPost, "/api/farmers", farmer)
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	if loc := resp.Header.Get("Location"); loc != "/api/farmers/1" {
		t.Errorf("Expected Location /api/farmers/1, got %q", loc)
	}

	var created map[string]interface{}
	testutil.ParseJSON(t, resp, &created)
	if created["id"] != float64(1) || created["name"] != "Ravi Kumar" {
		t.Errorf("Unexpected farmer: %v", created)
	}

	farmer["crops"] = "Wheat"
	resp = testutil.Do(t, app, http.MethodPut, "/api/farmers/1", farmer)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var fetched map[string]interface{}
	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &fetched)
	if fetched["crops"] != "Wheat" {
		t.Errorf("Expected updated crops, got %v", fetched["crops"])
	}

	var list []map[string]interface{}
	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers?q=village", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &list)
	if len(list) != 1 {
		t.Errorf("Expected 1 search match, got %d", len(list))
	}

	var deleted utilsSuccess
	resp = testutil.Do(t, app, http.MethodDelete, "/api/farmers/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &deleted)
	if !deleted.Ok || deleted.ID != 1 || deleted.Collection != "farmers" {
		t.Errorf("Unexpected delete response: %+v", deleted)
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = testutil.Do(t, app, http.MethodDelete, "/api/farmers/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

type utilsSuccess struct {
	Ok         bool   `json:"ok"`
	ID         int    `json:"id"`
	Collection string `json:"collection"`
}

func TestValidationErrors(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")

	resp := testutil.Do(t, app, http.MethodPost, "/api/farmers", map[string]string{"name": "Ravi"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	var body struct {
		Type   string   `json:"type"`
		Fields []string `json:"fields"`
	}
	testutil.ParseJSON(t, resp, &body)
	want := []string{"address", "crops", "farmSize"}
	if body.Type != "validation" || len(body.Fields) != len(want) {
		t.Fatalf("Unexpected validation body: %+v", body)
	}
	for i, f := range want {
		if body.Fields[i] != f {
			t.Errorf("Field %d: expected %s, got %s", i, f, body.Fields[i])
		}
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers/abc", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Do(t, app, http.MethodPut, "/api/farmers/7", map[string]string{
		"name": "X", "address": "Y", "farmSize": "1", "crops": "Z",
	})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	var farmers []interface{}
	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers", nil)
	testutil.ParseJSON(t, resp, &farmers)
	if len(farmers) != 0 {
		t.Errorf("Rejected create must not add a record, got %d", len(farmers))
	}
}

func seedLedger(t *testing.T, app *fiber.App) {
	t.Helper()

	steps := []struct {
		path string
		body map[string]interface{}
	}{
		{"/api/farmers", map[string]interface{}{
			"name": "Ravi", "contact": "98765", "address": "Village Road", "farmSize": "5 acres", "crops": "Paddy",
		}},
		// numbers arrive as JSON numbers from scripted clients
		{"/api/inventory", map[string]interface{}{
			"type": "Paddy Seeds", "quantity": 100, "unit": "bags", "price": 12.5, "supplier": "AgroCo", "expiry": "2027-01-01",
		}},
		{"/api/distributions", map[string]interface{}{
			"farmer": "Ravi", "seedType": "Paddy Seeds", "quantity": "10", "date": "2026-06-01", "status": "Completed",
		}},
		{"/api/logistics", map[string]interface{}{
			"tractorNumber": "TN-01", "driverName": "Mani", "bagsLoaded": 10, "loadingTeam": "A",
			"destination": "Village Road", "date": "2026-06-01", "status": "In Transit",
		}},
		{"/api/payments", map[string]interface{}{
			"farmerName": "Ravi", "accountNumber": "ACC-77", "amount": "125.00", "paymentDate": "2026-06-02",
			"method": "Cash", "status": "Pending",
		}},
	}
	for _, s := range steps {
		resp := testutil.Do(t, app, http.MethodPost, s.path, s.body)
		testutil.AssertStatus(t, resp, fiber.StatusCreated)
	}
}

func TestDerivedRoutes(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")
	seedLedger(t, app)

	var summary struct {
		TotalFarmers         int             `json:"totalFarmers"`
		TotalBagsDistributed int             `json:"totalBagsDistributed"`
		TotalBagsInInventory int             `json:"totalBagsInInventory"`
		PendingSettlements   int             `json:"pendingSettlements"`
		InventoryValue       decimal.Decimal `json:"inventoryValue"`
	}
	resp := testutil.Do(t, app, http.MethodGet, "/api/dashboard", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &summary)
	if summary.TotalFarmers != 1 || summary.TotalBagsDistributed != 10 ||
		summary.TotalBagsInInventory != 100 || summary.PendingSettlements != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if !summary.InventoryValue.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("Expected inventory value 1250, got %s", summary.InventoryValue)
	}

	var priced []struct {
		ID        int             `json:"id"`
		TotalCost decimal.Decimal `json:"totalCost"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/distributions", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &priced)
	if len(priced) != 1 || !priced[0].TotalCost.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Unexpected priced distributions: %+v", priced)
	}

	var cost struct {
		PricePerBag decimal.Decimal `json:"pricePerBag"`
		TotalCost   decimal.Decimal `json:"totalCost"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/distributions/1/cost", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &cost)
	if !cost.PricePerBag.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected price per bag 12.5, got %s", cost.PricePerBag)
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/distributions/9/cost", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	var activity []struct {
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/activity?limit=2", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &activity)
	if len(activity) != 2 {
		t.Fatalf("Expected 2 activity entries, got %d", len(activity))
	}

	var search struct {
		Matches []struct {
			Category string `json:"category"`
		} `json:"matches"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/search?q=village", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &search)
	if len(search.Matches) == 0 {
		t.Error("Expected search matches for village")
	}

	var options struct {
		FarmerNames []string `json:"farmerNames"`
		SeedTypes   []string `json:"seedTypes"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/options", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &options)
	if len(options.FarmerNames) != 1 || options.FarmerNames[0] != "Ravi" ||
		len(options.SeedTypes) != 1 || options.SeedTypes[0] != "Paddy Seeds" {
		t.Errorf("Unexpected options: %+v", options)
	}

	var breakdown []struct {
		SeedType string `json:"seedType"`
		Quantity int    `json:"quantity"`
	}
	resp = testutil.Do(t, app, http.MethodGet, "/api/breakdown", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &breakdown)
	if len(breakdown) != 1 || breakdown[0].Quantity != 10 {
		t.Errorf("Unexpected breakdown: %+v", breakdown)
	}
}

func TestListFilters(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")
	seedLedger(t, app)

	var list []interface{}
	resp := testutil.Do(t, app, http.MethodGet, "/api/logistics?status=Delivered", nil)
	testutil.ParseJSON(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("Expected no delivered loads, got %d", len(list))
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/logistics?status=In%20Transit", nil)
	testutil.ParseJSON(t, resp, &list)
	if len(list) != 1 {
		t.Errorf("Expected one load in transit, got %d", len(list))
	}

	resp = testutil.Do(t, app, http.MethodGet, "/api/payments?method=Check", nil)
	testutil.ParseJSON(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("Expected no check payments, got %d", len(list))
	}
}

func TestAccountsAreIsolated(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "ravi")
	seedLedger(t, app)

	resp := testutil.Do(t, app, http.MethodPost, "/api/auth/logout", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNoContent)
	signup(t, app, "asha")

	var farmers []interface{}
	resp = testutil.Do(t, app, http.MethodGet, "/api/farmers", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &farmers)
	if len(farmers) != 0 {
		t.Errorf("New account must start empty, got %d farmers", len(farmers))
	}
}

func TestListViewSeesTheListedSnapshot(t *testing.T) {
	backend := memory.New()
	rec := records.New(backend)
	rec.Activate(context.Background(), models.Session{ID: 1, Username: "ravi"})
	ws := services.NewWorkspace(rec)

	if _, err := ws.Farmers().Create(context.Background(), services.Fields{
		"name": "Ravi", "address": "Village Road", "farmSize": "5 acres", "crops": "Paddy",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	h := &handlers.RecordHandler[models.Farmer]{
		Manager:    ws.Farmers(),
		Collection: models.CollectionFarmers,
		View: func(rs models.RecordSet, items []models.Farmer) interface{} {
			for _, f := range items {
				if models.IndexOf(rs.Farmers, f.ID) < 0 {
					t.Errorf("Listed farmer %d is missing from the view snapshot", f.ID)
				}
			}
			return fiber.Map{"listed": len(items), "inSnapshot": len(rs.Farmers)}
		},
	}
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/farmers", h.List)

	var body map[string]int
	resp := testutil.Do(t, app, http.MethodGet, "/farmers?q=ravi", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &body)
	if body["listed"] != 1 || body["inSnapshot"] != 1 {
		t.Errorf("Unexpected view body: %v", body)
	}
}
