package types

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	var form map[string]FlexString
	body := `{"name":"Ravi","quantity":100,"price":12.50,"paid":true,"notes":null}`
	if err := json.Unmarshal([]byte(body), &form); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := map[string]string{"name": "Ravi", "quantity": "100", "price": "12.50", "paid": "true", "notes": ""}
	got := FlexFields(form)
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestFlexStringRejectsObjects(t *testing.T) {
	var f FlexString
	if err := json.Unmarshal([]byte(`{"a":1}`), &f); err == nil {
		t.Error("Expected error for object value")
	}
}
