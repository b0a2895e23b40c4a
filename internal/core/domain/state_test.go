package domain

import (
	"reflect"
	"testing"
)

func TestSeedState(t *testing.T) {
	st := SeedState()

	if len(st.Accounts) != 1 {
		t.Fatalf("expected 1 seed account, got %d", len(st.Accounts))
	}
	admin := st.Accounts[0]
	if admin.Email != "admin@example.com" || admin.Role != RoleAdmin || !admin.Verified {
		t.Fatalf("unexpected seed admin: %+v", admin)
	}
	if admin.Password != "Password123!" {
		t.Fatalf("unexpected seed password: %q", admin.Password)
	}

	if len(st.Departments) != 2 {
		t.Fatalf("expected 2 seed departments, got %d", len(st.Departments))
	}
	if st.Departments[0].Name != "Engineering" || st.Departments[1].Name != "HR" {
		t.Fatalf("unexpected seed departments: %+v", st.Departments)
	}

	if len(st.Employees) != 0 || len(st.Requests) != 0 {
		t.Fatalf("expected empty employees and requests, got %d and %d", len(st.Employees), len(st.Requests))
	}
}

func TestStateClone_Independent(t *testing.T) {
	orig := SeedState()
	orig.Requests = []Request{
		{
			ID:            "r1",
			Type:          "Equipment",
			Items:         []RequestItem{{Name: "Laptop", Qty: 1}},
			Status:        RequestPending,
			Date:          "2024-01-01",
			EmployeeEmail: "admin@example.com",
		},
	}

	clone := orig.Clone()
	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("clone differs from original")
	}

	clone.Accounts[0].Email = "other@example.com"
	clone.Requests[0].Items[0].Name = "Monitor"
	clone.Departments = append(clone.Departments, Department{ID: 3, Name: "Sales"})

	if orig.Accounts[0].Email != "admin@example.com" {
		t.Fatalf("mutating clone account leaked into original")
	}
	if orig.Requests[0].Items[0].Name != "Laptop" {
		t.Fatalf("mutating clone request items leaked into original")
	}
	if len(orig.Departments) != 2 {
		t.Fatalf("appending to clone departments leaked into original")
	}
}

func TestAccountIndex_ExactMatch(t *testing.T) {
	st := SeedState()

	if idx := st.AccountIndex("admin@example.com"); idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	// Comparison is exact, not case-insensitive.
	if idx := st.AccountIndex("Admin@Example.com"); idx != -1 {
		t.Fatalf("expected -1 for different casing, got %d", idx)
	}
	if idx := st.AccountIndex("ghost@example.com"); idx != -1 {
		t.Fatalf("expected -1 for unknown email, got %d", idx)
	}
}

func TestEmployeeIndex_FirstMatchWins(t *testing.T) {
	st := SeedState()
	st.Employees = []Employee{
		{ID: "E1", UserID: "a@example.com", Position: "Dev", DeptID: 1},
		{ID: "E1", UserID: "b@example.com", Position: "Lead", DeptID: 2},
	}

	idx := st.EmployeeIndex("E1")
	if idx != 0 {
		t.Fatalf("expected first match at index 0, got %d", idx)
	}
	if st.EmployeeIndex("E2") != -1 {
		t.Fatalf("expected -1 for unknown id")
	}
}
