package domain

import "errors"

// ErrNoState is returned by a store when no state blob has been persisted yet.
var ErrNoState = errors.New("no persisted state")

// State is the whole object graph the portal works on: the single
// authoritative in-memory copy, mirrored 1:1 to the persistent store after
// every mutation.
type State struct {
	Accounts    []Account    `json:"accounts" bson:"accounts"`
	Departments []Department `json:"departments" bson:"departments"`
	Employees   []Employee   `json:"employees" bson:"employees"`
	Requests    []Request    `json:"requests" bson:"requests"`
}

// SeedState builds the state persisted on first run: one verified admin
// account, two departments, and empty employee/request collections.
func SeedState() *State {
	return &State{
		Accounts: []Account{
			{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []Department{
			{ID: 1, Name: "Engineering", Description: "Software development team"},
			{ID: 2, Name: "HR", Description: "Human resources team"},
		},
		Employees: []Employee{},
		Requests:  []Request{},
	}
}

// Clone returns a deep copy of the state. Mutating the copy never touches the
// original, including nested request items.
func (s *State) Clone() *State {
	c := &State{
		Accounts:    make([]Account, len(s.Accounts)),
		Departments: make([]Department, len(s.Departments)),
		Employees:   make([]Employee, len(s.Employees)),
		Requests:    make([]Request, len(s.Requests)),
	}
	copy(c.Accounts, s.Accounts)
	copy(c.Departments, s.Departments)
	copy(c.Employees, s.Employees)
	for i, r := range s.Requests {
		r.Items = append([]RequestItem(nil), r.Items...)
		c.Requests[i] = r
	}
	return c
}

// AccountIndex returns the position of the account with the given email, or
// -1. Emails are compared exactly, the way the source system does.
func (s *State) AccountIndex(email string) int {
	for i, a := range s.Accounts {
		if a.Email == email {
			return i
		}
	}
	return -1
}

// FindAccount returns the account with the given email, if any.
func (s *State) FindAccount(email string) (Account, bool) {
	if i := s.AccountIndex(email); i >= 0 {
		return s.Accounts[i], true
	}
	return Account{}, false
}

// FindDepartment returns the department with the given id, if any.
func (s *State) FindDepartment(id int) (Department, bool) {
	for _, d := range s.Departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// EmployeeIndex returns the position of the first employee with the given id,
// or -1. Employee IDs are caller-supplied and uniqueness is unenforced; the
// first match wins.
func (s *State) EmployeeIndex(id string) int {
	for i, e := range s.Employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
