package services

import (
	"errors"
	"testing"

	"github.com/hiveproductions/hive/backend/pkg/response"
)

func TestShotRequestCreate_WithoutEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotRequestService(db)

	request, err := svc.Create(&CreateShotRequestRequest{Description: "crowd shots"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if request.EventID != nil {
		t.Error("expected no event attachment")
	}
}

func TestShotRequestCreate_UnknownEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotRequestService(db)

	missing := uint(404)
	_, err := svc.Create(&CreateShotRequestRequest{Description: "crowd shots", EventID: &missing})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != 404 {
		t.Errorf("expected a 404 for the unknown event, got %v", err)
	}
}

func TestShotRequestUpdate_AttachEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotRequestService(db)
	org := seedOrganization(t, db, "Org", "A1")
	event := seedEvent(t, db, org.ID, "Gala")

	request, err := svc.Create(&CreateShotRequestRequest{Description: "crowd shots"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(request.ID, &UpdateShotRequestRequest{EventID: &event.ID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.EventID == nil || *updated.EventID != event.ID {
		t.Error("expected the request to be attached to the event")
	}
	if updated.Description != "crowd shots" {
		t.Errorf("untouched Description changed to %q", updated.Description)
	}
}

func TestShotRequestDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotRequestService(db)

	err := svc.Delete(404)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != 404 {
		t.Errorf("expected a 404, got %v", err)
	}
}
