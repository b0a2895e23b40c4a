package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// ErrUnknownAccountEmail is returned when an employee references an account
// email that does not exist at save time. The reference is not kept
// consistent afterwards: deleting the account later orphans the employee.
var ErrUnknownAccountEmail = errors.New("user email not found in accounts")

// Employee links an account to a position and a department. The ID is
// free-text and caller-supplied; DeptID is not validated against existing
// departments.
type Employee struct {
	ID       string `json:"id" bson:"id"`
	UserID   string `json:"userId" bson:"userId"`
	Position string `json:"position" bson:"position"`
	DeptID   int    `json:"deptId" bson:"deptId"`
	HireDate string `json:"hireDate" bson:"hireDate"`
}
