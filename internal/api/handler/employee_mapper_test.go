package handler

import (
	"testing"
	"time"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

func TestToEmployeeResponse_ShiftsHireDate(t *testing.T) {
	e := &domain.Employee{
		ID:       "emp-1",
		Email:    "ann@x.com",
		HireDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Image:    "/public/images/a.jpg",
	}

	resp, err := toEmployeeResponse(e, "api.example.com")
	if err != nil {
		t.Fatalf("toEmployeeResponse returned error: %v", err)
	}
	if resp.HireDate != "2024-01-03" {
		t.Fatalf("expected 2024-01-03, got %q", resp.HireDate)
	}
	if resp.Image != "https://api.example.com/public/images/a.jpg" {
		t.Fatalf("unexpected image url: %q", resp.Image)
	}
}

func TestToEmployeeResponse_MonthRollover(t *testing.T) {
	e := &domain.Employee{
		HireDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	resp, err := toEmployeeResponse(e, "h")
	if err != nil {
		t.Fatalf("toEmployeeResponse returned error: %v", err)
	}
	if resp.HireDate != "2024-02-02" {
		t.Fatalf("expected 2024-02-02, got %q", resp.HireDate)
	}
}

func TestToEmployeeResponse_ZeroHireDate(t *testing.T) {
	if _, err := toEmployeeResponse(&domain.Employee{}, "h"); err != domain.ErrResponseShaping {
		t.Fatalf("expected ErrResponseShaping, got %v", err)
	}
}
