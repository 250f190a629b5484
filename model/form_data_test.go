package model

import (
	"encoding/json"
	"testing"
)

func TestFormDataPreservesObjectOrder(t *testing.T) {
	raw := `{"Age":17,"Reason":"friend invite","Active":true,"Note":null}`

	var form FormData
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		t.Fatal(err)
	}

	want := FormData{
		{Name: "Age", Value: "17"},
		{Name: "Reason", Value: "friend invite"},
		{Name: "Active", Value: "true"},
		{Name: "Note", Value: "null"},
	}

	if len(form) != len(want) {
		t.Fatalf("got %d fields, want %d", len(form), len(want))
	}
	for i := range want {
		if form[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, form[i], want[i])
		}
	}
}

func TestFormDataNumberStringification(t *testing.T) {
	// Numbers must survive verbatim, not as float64 renderings.
	raw := `{"Big":9007199254740993,"Frac":17.50}`

	var form FormData
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		t.Fatal(err)
	}

	if form[0].Value != "9007199254740993" {
		t.Errorf("Big = %q", form[0].Value)
	}
	if form[1].Value != "17.50" {
		t.Errorf("Frac = %q", form[1].Value)
	}
}

func TestFormDataNestedValueBecomesJSON(t *testing.T) {
	raw := `{"Extra":{"a":1}}`

	var form FormData
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		t.Fatal(err)
	}

	if form[0].Value != `{"a":1}` {
		t.Errorf("Extra = %q", form[0].Value)
	}
}

func TestFormDataNullAndEmpty(t *testing.T) {
	var form FormData
	if err := json.Unmarshal([]byte(`null`), &form); err != nil {
		t.Fatal(err)
	}
	if form != nil {
		t.Errorf("null should decode to nil, got %+v", form)
	}

	// An empty object is present-but-empty, distinct from absent.
	if err := json.Unmarshal([]byte(`{}`), &form); err != nil {
		t.Fatal(err)
	}
	if form == nil || len(form) != 0 {
		t.Errorf("{} should decode to an empty non-nil FormData, got %#v", form)
	}
}

func TestFormDataRejectsNonObject(t *testing.T) {
	var form FormData
	if err := json.Unmarshal([]byte(`["a","b"]`), &form); err == nil {
		t.Error("expected error for array formData")
	}
}
