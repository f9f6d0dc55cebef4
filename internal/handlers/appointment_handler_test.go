package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dochouse/doc-house-server/internal/models"
)

func TestScopeAppointmentsAdminSeesAll(t *testing.T) {
	filter, ok := scopeAppointments(models.RoleAdmin, "admin@x.com", "b@x.com")
	if !ok {
		t.Fatal("admin listing should always be allowed")
	}
	if len(filter) != 0 {
		t.Fatalf("admin filter should be empty, got %v", filter)
	}
}

func TestScopeAppointmentsOwnerMatch(t *testing.T) {
	filter, ok := scopeAppointments(models.RoleUnset, "a@x.com", "a@x.com")
	if !ok {
		t.Fatal("listing your own appointments should be allowed")
	}
	if got := filter["email"]; got != "a@x.com" {
		t.Fatalf("expected email filter a@x.com, got %v", got)
	}
}

func TestScopeAppointmentsOwnerMismatch(t *testing.T) {
	if _, ok := scopeAppointments(models.RoleUnset, "a@x.com", "b@x.com"); ok {
		t.Fatal("asking for someone else's appointments must be rejected")
	}
	// An empty email query is a mismatch too unless the token email is empty.
	if _, ok := scopeAppointments(models.RoleUnset, "a@x.com", ""); ok {
		t.Fatal("a missing email query must be rejected for non-admins")
	}
}

func TestAppointmentPaymentFieldNames(t *testing.T) {
	apt := models.Appointment{
		Email:         "a@x.com",
		Status:        models.AppointmentPaid,
		TransactionID: "T1",
	}
	body, err := json.Marshal(apt)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	// The misspelled transaction field is load-bearing wire compatibility.
	if !strings.Contains(string(body), `"tranjactionId":"T1"`) {
		t.Fatalf("expected tranjactionId in payload, got %s", body)
	}
	if !strings.Contains(string(body), `"status":"paid"`) {
		t.Fatalf("expected status paid in payload, got %s", body)
	}
}
