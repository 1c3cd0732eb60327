package screening

import "time"

type Screening struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"companyId"`
	CompanyName     string    `json:"companyName,omitempty"`
	ParticipantName string    `json:"participantName"`
	Date            time.Time `json:"date"`
	TimeStart       string    `json:"timeStart"`
	TimeEnd         string    `json:"timeEnd"`
	EmployeeCount   int       `json:"employeeCount"`
	Type            Type      `json:"type"`
	Status          Status    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StaffAssignment links a staff user to a screening. The assignment has its
// own identity, distinct from the user it references.
type StaffAssignment struct {
	ID          int64     `json:"id"`
	ScreeningID int64     `json:"screeningId"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName,omitempty"`
	AssignedAt  time.Time `json:"assignedAt"`
}

type TestAssignment struct {
	ID           int64     `json:"id"`
	ScreeningID  int64     `json:"screeningId"`
	HealthTestID int64     `json:"healthTestId"`
	TestName     string    `json:"testName,omitempty"`
	AssignedAt   time.Time `json:"assignedAt"`
}
