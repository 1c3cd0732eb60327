package company

import "time"

type Company struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Active        bool      `json:"active"`
	WorkerCount   int       `json:"workerCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Worker struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"companyId"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	NationalID string     `json:"nationalId,omitempty"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	HireDate   *time.Time `json:"hireDate,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
}
