package healthtest

import "time"

type HealthTest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyAssignment marks a health test as applying to a company by default.
// The assignment carries its own identity and timestamp.
type CompanyAssignment struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"companyId"`
	HealthTestID int64     `json:"healthTestId"`
	TestName     string    `json:"testName,omitempty"`
	AssignedAt   time.Time `json:"assignedAt"`
}
