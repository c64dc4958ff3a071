// Package hrtest provides an in-memory HR backend for tests: real HTTP
// over httptest, bearer-token auth with signed JWTs, bcrypt password
// verification, and the same mixed raw/envelope response shapes the
// production backend exhibits.
package hrtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// Server is a fake HR backend. Zero-value maps are initialized by
// NewServer; all mutation endpoints answer with the envelope shape
// while reads return raw resources, mirroring the real backend's
// inconsistency.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	jwtSecret  []byte
	usersByID  map[string]userRecord
	employees  map[string]models.Employee
	attendance map[string]models.Attendance
	salaries   map[string]models.SalaryRecord
	projects   map[string]models.Project

	// FailLogins makes /auth/login reject every attempt, for testing
	// the register-then-login flow.
	FailLogins bool
}

// NewServer starts the fake backend. Callers own Close.
func NewServer() *Server {
	s := &Server{
		jwtSecret:  []byte("hrtest-secret"),
		usersByID:  make(map[string]userRecord),
		employees:  make(map[string]models.Employee),
		attendance: make(map[string]models.Attendance),
		salaries:   make(map[string]models.SalaryRecord),
		projects:   make(map[string]models.Project),
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)

	auth := r.NewRoute().Subrouter()
	auth.Use(s.requireAuth)
	auth.HandleFunc("/user/profile", s.handleProfile).Methods(http.MethodGet)

	auth.HandleFunc("/admin/employees", s.handleEmployeeList).Methods(http.MethodGet)
	auth.HandleFunc("/admin/employees", s.handleEmployeeCreate).Methods(http.MethodPost)
	auth.HandleFunc("/admin/employees/{id}", s.handleEmployeeGet).Methods(http.MethodGet)
	auth.HandleFunc("/admin/employees/{id}", s.handleEmployeeUpdate).Methods(http.MethodPut)
	auth.HandleFunc("/admin/employees/{id}", s.deleteFrom(func(id string) bool {
		_, ok := s.employees[id]
		delete(s.employees, id)
		return ok
	})).Methods(http.MethodDelete)

	auth.HandleFunc("/admin/users", s.handleUserList).Methods(http.MethodGet)
	auth.HandleFunc("/admin/users/{id}", s.handleUserGet).Methods(http.MethodGet)
	auth.HandleFunc("/admin/users/{id}", s.handleUserUpdate).Methods(http.MethodPut)
	auth.HandleFunc("/admin/users/{id}", s.deleteFrom(func(id string) bool {
		_, ok := s.usersByID[id]
		delete(s.usersByID, id)
		return ok
	})).Methods(http.MethodDelete)

	auth.HandleFunc("/admin/attendance", s.handleAttendanceList).Methods(http.MethodGet)
	auth.HandleFunc("/admin/attendance", s.handleAttendanceCreate).Methods(http.MethodPost)
	auth.HandleFunc("/admin/attendance/{id}", s.handleAttendanceUpdate).Methods(http.MethodPut)
	auth.HandleFunc("/admin/attendance/{id}", s.deleteFrom(func(id string) bool {
		_, ok := s.attendance[id]
		delete(s.attendance, id)
		return ok
	})).Methods(http.MethodDelete)
	auth.HandleFunc("/manager/attendance/check-in", s.handleCheck(true)).Methods(http.MethodPost)
	auth.HandleFunc("/manager/attendance/check-out", s.handleCheck(false)).Methods(http.MethodPost)

	auth.HandleFunc("/admin/salaries", s.handleSalaryList).Methods(http.MethodGet)
	auth.HandleFunc("/admin/salaries/history/{employeeId}", s.handleSalaryHistory).Methods(http.MethodGet)
	auth.HandleFunc("/admin/salaries/calculate", s.handleSalaryCalculate).Methods(http.MethodPost)
	auth.HandleFunc("/admin/salaries/{id}/status", s.handleSalaryStatus).Methods(http.MethodPut)

	auth.HandleFunc("/admin/projects", s.handleProjectList).Methods(http.MethodGet)
	auth.HandleFunc("/admin/projects", s.handleProjectCreate).Methods(http.MethodPost)
	auth.HandleFunc("/admin/projects/{id}", s.handleProjectGet).Methods(http.MethodGet)
	auth.HandleFunc("/admin/projects/{id}", s.handleProjectUpdate).Methods(http.MethodPut)
	auth.HandleFunc("/admin/projects/{id}", s.deleteFrom(func(id string) bool {
		_, ok := s.projects[id]
		delete(s.projects, id)
		return ok
	})).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// AddUser registers an account directly, bypassing HTTP.
func (s *Server) AddUser(fullName, email, password, role string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	u := models.User{ID: uuid.NewString(), FullName: fullName, Email: email, Role: role}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByID[u.ID] = userRecord{user: u, passwordHash: hash}
	return u
}

// SeedEmployee inserts an employee record directly.
func (s *Server) SeedEmployee(e models.Employee) models.Employee {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[e.ID] = e
	return e
}

// SeedAttendance inserts an attendance record directly.
func (s *Server) SeedAttendance(a models.Attendance) models.Attendance {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance[a.ID] = a
	return a
}

// SeedSalary inserts a salary record directly.
func (s *Server) SeedSalary(rec models.SalaryRecord) models.SalaryRecord {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salaries[rec.ID] = rec
	return rec
}

// SeedProject inserts a project record directly.
func (s *Server) SeedProject(p models.Project) models.Project {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
	return p
}

// TokenFor issues a valid bearer token for the given user id.
func (s *Server) TokenFor(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		panic(err)
	}
	return token
}

// ---- auth ----

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	var rec userRecord
	found := false
	for _, candidate := range s.usersByID {
		if candidate.user.Email == req.Email {
			rec = candidate
			found = true
			break
		}
	}
	fail := s.FailLogins
	s.mu.Unlock()

	if fail || !found || bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)) != nil {
		writeEnvelopeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: s.TokenFor(rec.user.ID), User: rec.user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	for _, rec := range s.usersByID {
		if rec.user.Email == req.Email {
			s.mu.Unlock()
			// 200 with success:false, the envelope-level business error.
			writeEnvelopeError(w, http.StatusOK, "email already registered")
			return
		}
	}
	s.mu.Unlock()

	u := s.AddUser(req.FullName, req.Email, req.Password, req.Role)
	writeEnvelope(w, http.StatusOK, u)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.userFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, rec.user)
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.userFromRequest(r); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) userFromRequest(r *http.Request) (userRecord, bool) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return userRecord{}, false
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Method.Alg())
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return userRecord{}, false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return userRecord{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.usersByID[sub]
	return rec, ok
}

// ---- employees ----

func (s *Server) handleEmployeeList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		items = append(items, e)
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleEmployeeGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	e, ok := s.employees[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleEmployeeCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	photo, _, err := r.FormFile("photo")
	if err != nil {
		writeEnvelopeError(w, http.StatusOK, "photo attachment missing")
		return
	}
	_ = photo.Close()

	amount, _ := strconv.ParseFloat(r.FormValue("salaryAmount"), 64)
	active, _ := strconv.ParseBool(r.FormValue("isActive"))

	now := time.Now().UTC()
	e := models.Employee{
		ID:           uuid.NewString(),
		UserID:       r.FormValue("userId"),
		Name:         r.FormValue("name"),
		Position:     r.FormValue("position"),
		Department:   r.FormValue("department"),
		SalaryType:   models.SalaryType(r.FormValue("salaryType")),
		SalaryAmount: amount,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if v := r.FormValue("salaryRate"); v != "" {
		rate, _ := strconv.ParseFloat(v, 64)
		e.SalaryRate = &rate
	}

	s.mu.Lock()
	s.employees[e.ID] = e
	s.mu.Unlock()

	writeEnvelope(w, http.StatusOK, e)
}

func (s *Server) handleEmployeeUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "employee not found")
		return
	}
	e.UserID = req.UserID
	e.Name = req.Name
	e.Position = req.Position
	e.Department = req.Department
	e.SalaryType = req.SalaryType
	e.SalaryAmount = req.SalaryAmount
	e.SalaryRate = req.SalaryRate
	e.IsActive = req.IsActive
	e.UpdatedAt = time.Now().UTC()
	s.employees[e.ID] = e

	writeJSON(w, http.StatusOK, e)
}

// ---- users ----

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := make([]models.User, 0, len(s.usersByID))
	for _, rec := range s.usersByID {
		items = append(items, rec.user)
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, ok := s.usersByID[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, rec.user)
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.usersByID[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "user not found")
		return
	}
	rec.user.FullName = req.FullName
	rec.user.Email = req.Email
	rec.user.Role = req.Role
	s.usersByID[rec.user.ID] = rec

	writeJSON(w, http.StatusOK, rec.user)
}

// ---- attendance ----

func (s *Server) sortedAttendance() []models.Attendance {
	s.mu.Lock()
	items := make([]models.Attendance, 0, len(s.attendance))
	for _, a := range s.attendance {
		items = append(items, a)
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *Server) handleAttendanceList(w http.ResponseWriter, r *http.Request) {
	items := s.sortedAttendance()

	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		filtered := items[:0]
		for _, a := range items {
			if a.EmployeeID == employeeID {
				filtered = append(filtered, a)
			}
		}
		writeJSON(w, http.StatusOK, filtered)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, models.PaginatedResponse[models.Attendance]{
		Data:       items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (s *Server) handleAttendanceCreate(w http.ResponseWriter, r *http.Request) {
	var req models.AttendanceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	now := time.Now().UTC()
	a := models.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mu.Lock()
	s.attendance[a.ID] = a
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAttendanceUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.AttendanceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendance[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "attendance not found")
		return
	}
	a.EmployeeID = req.EmployeeID
	a.Date = req.Date
	a.CheckIn = req.CheckIn
	a.CheckOut = req.CheckOut
	a.Status = req.Status
	a.Notes = req.Notes
	a.UpdatedAt = time.Now().UTC()
	s.attendance[a.ID] = a

	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleCheck(in bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			EmployeeID string `json:"employeeId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
			return
		}

		now := time.Now().UTC()
		clock := now.Format("15:04")
		today := now.Format("2006-01-02")

		s.mu.Lock()
		defer s.mu.Unlock()

		for id, a := range s.attendance {
			if a.EmployeeID == req.EmployeeID && a.Date == today {
				if in {
					a.CheckIn = &clock
				} else {
					a.CheckOut = &clock
				}
				a.UpdatedAt = now
				s.attendance[id] = a
				writeJSON(w, http.StatusOK, a)
				return
			}
		}

		a := models.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			Date:       today,
			Status:     models.AttendancePresent,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if in {
			a.CheckIn = &clock
		} else {
			a.CheckOut = &clock
		}
		s.attendance[a.ID] = a
		writeJSON(w, http.StatusOK, a)
	}
}

// ---- salaries ----

func (s *Server) handleSalaryList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := make([]models.SalaryRecord, 0, len(s.salaries))
	for _, rec := range s.salaries {
		items = append(items, rec)
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSalaryHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	s.mu.Lock()
	items := make([]models.SalaryRecord, 0)
	for _, rec := range s.salaries {
		if rec.EmployeeID == employeeID {
			items = append(items, rec)
		}
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSalaryCalculate(w http.ResponseWriter, r *http.Request) {
	var req models.SalaryCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	var base float64
	for _, e := range s.employees {
		if e.ID == req.EmployeeID {
			base = e.SalaryAmount
			break
		}
	}
	s.mu.Unlock()

	now := time.Now().UTC()
	rec := models.SalaryRecord{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		BaseAmount:    base,
		Bonus:         req.Bonus,
		Deductions:    req.Deductions,
		NetAmount:     base + req.Bonus - req.Deductions,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.salaries[rec.ID] = rec
	s.mu.Unlock()

	writeEnvelope(w, http.StatusOK, rec)
}

func (s *Server) handleSalaryStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.salaries[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "salary record not found")
		return
	}
	rec.PaymentStatus = req.Status
	if req.Status == models.PaymentPaid {
		date := time.Now().UTC().Format("2006-01-02")
		rec.PaymentDate = &date
	}
	rec.UpdatedAt = time.Now().UTC()
	s.salaries[rec.ID] = rec

	writeJSON(w, http.StatusOK, rec)
}

// ---- projects ----

func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		items = append(items, p)
	}
	s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.projects[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	now := time.Now().UTC()
	status := req.Status
	if status == "" {
		status = models.ProjectActive
	}
	p := models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ManagerID:   req.ManagerID,
		EmployeeIDs: req.EmployeeIDs,
		Budget:      req.Budget,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.projects[p.ID] = p
	s.mu.Unlock()

	writeEnvelope(w, http.StatusOK, p)
}

func (s *Server) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelopeError(w, http.StatusNotFound, "project not found")
		return
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Location = req.Location
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate
	p.ManagerID = req.ManagerID
	p.EmployeeIDs = req.EmployeeIDs
	p.Budget = req.Budget
	if req.Status != "" {
		p.Status = req.Status
	}
	p.UpdatedAt = time.Now().UTC()
	s.projects[p.ID] = p

	writeJSON(w, http.StatusOK, p)
}

// ---- plumbing ----

func (s *Server) deleteFrom(remove func(id string) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		ok := remove(mux.Vars(r)["id"])
		s.mu.Unlock()
		if !ok {
			writeEnvelopeError(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"success": true, "data": data})
}

func writeEnvelopeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
