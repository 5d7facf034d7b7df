package integration

import (
	"net/http"
	"testing"
)

func TestExpenseLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "user@example.com", "password123")
	foodID := app.createCategory(t, token, "Food")
	transportID := app.createCategory(t, token, "Transport")

	// Create.
	rec := app.request("POST", "/api/v1/expenses",
		`{"title":"Lunch","amount":12.50,"date":"2026-08-15","category_id":"`+foodID+`"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	exp := parseJSON(t, rec)["expense"].(map[string]interface{})
	expID := exp["id"].(string)
	cat := exp["category"].(map[string]interface{})
	if cat["name"] != "Food" {
		t.Errorf("expected joined category Food, got %v", cat["name"])
	}

	// Update overwrites all fields, including the category.
	rec = app.request("PUT", "/api/v1/expenses/"+expID,
		`{"title":"Taxi","amount":"9.99","date":"2026-08-16","category_id":"`+transportID+`"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["expense"].(map[string]interface{})
	if updated["title"] != "Taxi" {
		t.Errorf("expected Taxi, got %v", updated["title"])
	}
	if updated["category"].(map[string]interface{})["name"] != "Transport" {
		t.Errorf("expected category Transport, got %v", updated["category"])
	}

	// The category's expense count reflects the move.
	rec = app.request("GET", "/api/v1/categories/"+transportID, "", "")
	catWithCount := parseJSON(t, rec)["category"].(map[string]interface{})
	if catWithCount["expense_count"] != float64(1) {
		t.Errorf("expected expense_count 1, got %v", catWithCount["expense_count"])
	}

	// Delete.
	rec = app.request("DELETE", "/api/v1/expenses/"+expID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/expenses", "", token)
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 0 {
		t.Errorf("expected no expenses after delete, got %d", len(expenses))
	}
}

func TestExpenseValidation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "user@example.com", "password123")
	catID := app.createCategory(t, token, "Food")

	cases := []struct {
		name string
		body string
		want int
	}{
		{"zero amount", `{"title":"X","amount":0,"date":"2026-08-15","category_id":"` + catID + `"}`, http.StatusBadRequest},
		{"negative amount", `{"title":"X","amount":-5,"date":"2026-08-15","category_id":"` + catID + `"}`, http.StatusBadRequest},
		{"missing title", `{"amount":5,"date":"2026-08-15","category_id":"` + catID + `"}`, http.StatusBadRequest},
		{"bad date", `{"title":"X","amount":5,"date":"August 15","category_id":"` + catID + `"}`, http.StatusBadRequest},
		{"unknown category", `{"title":"X","amount":5,"date":"2026-08-15","category_id":"0190b9e2-0000-7000-8000-000000000000"}`, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/expenses", tc.body, token)
			if rec.Code != tc.want {
				t.Errorf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}

	// None of the rejected payloads persisted anything.
	rec := app.request("GET", "/api/v1/expenses", "", token)
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 0 {
		t.Errorf("expected no expenses, got %d", len(expenses))
	}
}

func TestExpensesAreOwnerScoped(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "alice@example.com", "password123")
	bobToken, _ := app.registerUser(t, "bob@example.com", "password123")
	catID := app.createCategory(t, aliceToken, "Food")

	aliceExpID := app.createExpense(t, aliceToken, "Lunch", "12.50", "2026-08-15", catID)
	app.createExpense(t, bobToken, "Coffee", "3.00", "2026-08-15", catID)

	// Each user lists only their own expenses.
	rec := app.request("GET", "/api/v1/expenses", "", aliceToken)
	aliceExpenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(aliceExpenses) != 1 {
		t.Fatalf("expected 1 expense for alice, got %d", len(aliceExpenses))
	}
	if aliceExpenses[0].(map[string]interface{})["title"] != "Lunch" {
		t.Errorf("unexpected expense for alice: %v", aliceExpenses[0])
	}

	// Bob cannot update or delete Alice's expense; it reads as missing.
	rec = app.request("PUT", "/api/v1/expenses/"+aliceExpID,
		`{"title":"Hijacked","amount":1,"date":"2026-08-15","category_id":"`+catID+`"}`, bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-user update, got %d", rec.Code)
	}

	rec = app.request("DELETE", "/api/v1/expenses/"+aliceExpID, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-user delete, got %d", rec.Code)
	}

	// Alice's expense is untouched.
	rec = app.request("GET", "/api/v1/expenses", "", aliceToken)
	aliceExpenses = parseJSON(t, rec)["expenses"].([]interface{})
	if len(aliceExpenses) != 1 || aliceExpenses[0].(map[string]interface{})["title"] != "Lunch" {
		t.Error("expected alice's expense to survive bob's attempts")
	}
}

func TestExpensesOrderedByDateDescending(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "user@example.com", "password123")
	catID := app.createCategory(t, token, "Food")

	app.createExpense(t, token, "Oldest", "1.00", "2026-08-01", catID)
	app.createExpense(t, token, "Newest", "3.00", "2026-08-20", catID)
	app.createExpense(t, token, "Middle", "2.00", "2026-08-10", catID)

	rec := app.request("GET", "/api/v1/expenses", "", token)
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}
	wantOrder := []string{"Newest", "Middle", "Oldest"}
	for i, want := range wantOrder {
		got := expenses[i].(map[string]interface{})["title"]
		if got != want {
			t.Errorf("position %d: expected %s, got %v", i, want, got)
		}
	}
}
