package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmailExists = errors.New("email already exists")
var ErrUploadTooLarge = errors.New("file exceeds the upload size limit")
var ErrResponseShaping = errors.New("failed to generate employee response")

// Employee is the sole durable HR entity. The Image field holds a relative
// URL path under /public/images; the absolute URL is built at response time.
type Employee struct {
	ID         string    `bson:"_id,omitempty"`
	FirstName  string    `bson:"first_name,omitempty"`
	LastName   string    `bson:"last_name,omitempty"`
	Email      string    `bson:"email"`
	Phone      string    `bson:"phone,omitempty"`
	HireDate   time.Time `bson:"hire_date"`
	Salary     int       `bson:"salary"`
	Department string    `bson:"department,omitempty"`
	Image      string    `bson:"image,omitempty"`
}
