package handler

// Employee create/update requests arrive as multipart forms (fields plus an
// optional "image" file), so they are read with FormValue rather than bound
// structs. Only the response shapes are declared here.

// employeeResponse is the client-facing employee view. HireDate carries the
// shaped YYYY-MM-DD string, Image the absolute avatar URL.
type employeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hireDate"`
	Salary     int    `json:"salary"`
	Department string `json:"department"`
	Image      string `json:"image"`
}

type employeeEnvelope struct {
	Employee employeeResponse `json:"employee"`
}

type employeeListEnvelope struct {
	Employees []employeeResponse `json:"employees"`
}
