package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/hr-api/internal/api/metrics"
	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

// avatarField is the multipart field name the avatar file arrives under.
const avatarField = "image"

// uploadErrorResponse mirrors the legacy upload failure envelope.
type uploadErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// EmployeeHandler handles the admin-gated employee CRUD routes.
type EmployeeHandler struct {
	service ports.EmployeeService
	avatars ports.AvatarStore
}

func NewEmployeeHandler(service ports.EmployeeService, avatars ports.AvatarStore) *EmployeeHandler {
	return &EmployeeHandler{service: service, avatars: avatars}
}

// employeeForm is the multipart field set validated on create.
type employeeForm struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required"`
	HireDate   string `validate:"required"`
	Salary     string `validate:"required"`
	Department string `validate:"required"`
}

// Create handles POST /api/employee/create.
//
// @Summary      Create an employee
// @Tags         employee
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        firstName  formData  string  true   "First name"
// @Param        lastName   formData  string  true   "Last name"
// @Param        email      formData  string  true   "Email (unique)"
// @Param        phone      formData  string  true   "Phone"
// @Param        hireDate   formData  string  true   "Hire date (YYYY-MM-DD)"
// @Param        salary     formData  string  true   "Salary (integer)"
// @Param        department formData  string  true   "Department"
// @Param        image      formData  file    false  "Avatar image (max 5 MiB)"
// @Success      201  {object}  employeeEnvelope
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/employee/create [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	imagePath, err := h.saveAvatar(c)
	if err != nil {
		return h.uploadFailure(c, err)
	}

	form := employeeForm{
		FirstName:  c.FormValue("firstName"),
		LastName:   c.FormValue("lastName"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		HireDate:   c.FormValue("hireDate"),
		Salary:     c.FormValue("salary"),
		Department: c.FormValue("department"),
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	hireDate, err := time.Parse(hireDateLayout, form.HireDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "hireDate must be in YYYY-MM-DD format"})
	}
	salary, err := parseSalary(form.Salary)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Email:      form.Email,
		Phone:      form.Phone,
		HireDate:   hireDate,
		Salary:     salary,
		Department: form.Department,
		Image:      imagePath,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email already exists"})
		}
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()

	resp, err := toEmployeeResponse(created, c.Request().Host)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employeeEnvelope{Employee: resp})
}

// List handles GET /api/employee/.
//
// @Summary      List all employees
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  employeeListEnvelope
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/employee/ [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	host := c.Request().Host
	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		resp, err := toEmployeeResponse(e, host)
		if err != nil {
			return err
		}
		out = append(out, resp)
	}

	return c.JSON(http.StatusOK, employeeListEnvelope{Employees: out})
}

// Update handles PUT /api/employee/update/:id. Only fields present in the
// form are written; a fresh upload replaces the avatar, otherwise the stored
// path is left untouched.
//
// @Summary      Update an employee
// @Tags         employee
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Employee id"
// @Param        image  formData  file    false  "Replacement avatar"
// @Success      200  {object}  employeeEnvelope
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/employee/update/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	imagePath, err := h.saveAvatar(c)
	if err != nil {
		return h.uploadFailure(c, err)
	}

	patch, err := patchFromForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}
	if imagePath != "" {
		patch.Image = &imagePath
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Employee not found"})
		case errors.Is(err, domain.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email already exists"})
		}
		return err
	}

	resp, err := toEmployeeResponse(updated, c.Request().Host)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeEnvelope{Employee: resp})
}

// Delete handles DELETE /api/employee/delete/:id. Replies 204 with no body.
//
// @Summary      Delete an employee
// @Tags         employee
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/employee/delete/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Employee not found"})
		}
		return err
	}

	metrics.EmployeesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// saveAvatar stores the uploaded avatar, if any, and returns its relative
// path. An absent file is not an error: the empty path means "no avatar".
func (h *EmployeeHandler) saveAvatar(c echo.Context) (string, error) {
	fh, err := c.FormFile(avatarField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	path, err := h.avatars.Save(fh.Filename, fh.Size, f)
	if err != nil {
		return "", err
	}

	metrics.AvatarUploadBytes.Observe(float64(fh.Size))
	return path, nil
}

// uploadFailure maps upload errors the way the legacy API did: size-limit
// violations are 400 with the parser diagnostic, anything else 500.
func (h *EmployeeHandler) uploadFailure(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUploadTooLarge) {
		return c.JSON(http.StatusBadRequest, uploadErrorResponse{
			Message: "File upload error",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusInternalServerError, uploadErrorResponse{
		Message: "Internal Server Error",
		Error:   err.Error(),
	})
}

// patchFromForm builds a partial update from the fields actually present in
// the submitted form, so omitted keys keep their stored values.
func patchFromForm(c echo.Context) (ports.EmployeePatch, error) {
	values, err := c.FormParams()
	if err != nil {
		return ports.EmployeePatch{}, errors.New("invalid form payload")
	}

	var patch ports.EmployeePatch
	if v, ok := formLookup(values, "firstName"); ok {
		patch.FirstName = &v
	}
	if v, ok := formLookup(values, "lastName"); ok {
		patch.LastName = &v
	}
	if v, ok := formLookup(values, "email"); ok {
		patch.Email = &v
	}
	if v, ok := formLookup(values, "phone"); ok {
		patch.Phone = &v
	}
	if v, ok := formLookup(values, "department"); ok {
		patch.Department = &v
	}
	if v, ok := formLookup(values, "hireDate"); ok {
		hireDate, err := time.Parse(hireDateLayout, v)
		if err != nil {
			return ports.EmployeePatch{}, errors.New("hireDate must be in YYYY-MM-DD format")
		}
		patch.HireDate = &hireDate
	}
	if v, ok := formLookup(values, "salary"); ok {
		salary, err := parseSalary(v)
		if err != nil {
			return ports.EmployeePatch{}, err
		}
		patch.Salary = &salary
	}
	return patch, nil
}

func formLookup(values map[string][]string, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// parseSalary rejects non-numeric and negative input at the boundary rather
// than letting an unparseable value reach storage.
func parseSalary(s string) (int, error) {
	salary, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("salary must be a number")
	}
	if salary < 0 {
		return 0, errors.New("salary must not be negative")
	}
	return salary, nil
}
