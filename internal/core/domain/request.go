package domain

import "errors"

// RequestStatus is the lifecycle state of a resource request. Requests are
// created Pending; no transition is ever applied by this system.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

var ErrNoRequestItems = errors.New("at least one item is required")

// RequestItem is a single line of a request. Quantity is always >= 1.
type RequestItem struct {
	Name string `json:"name" bson:"name"`
	Qty  int    `json:"qty" bson:"qty"`
}

// Request is a resource request submitted by a logged-in user. It is visible
// only to its creator and is never edited or deleted.
type Request struct {
	ID            string        `json:"id" bson:"id"`
	Type          string        `json:"type" bson:"type"`
	Items         []RequestItem `json:"items" bson:"items"`
	Status        RequestStatus `json:"status" bson:"status"`
	Date          string        `json:"date" bson:"date"`
	EmployeeEmail string        `json:"employeeEmail" bson:"employeeEmail"`
}
