package document

import "time"

type Document struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	FileName    string     `json:"fileName"`
	FileURL     string     `json:"fileUrl"`
	FileSize    int64      `json:"fileSize"`
	FileType    string     `json:"fileType"`
	Category    Category   `json:"category"`
	Status      Status     `json:"status"`
	CompanyID   *int64     `json:"companyId,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`
	WorkerID    *int64     `json:"workerId,omitempty"`
	ScreeningID *int64     `json:"screeningId,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	UploadDate  time.Time  `json:"uploadDate"`
}

type Upload struct {
	Title       string
	FileName    string
	FileType    string
	Category    Category
	CompanyID   *int64
	WorkerID    *int64
	ScreeningID *int64
	ExpiryDate  *time.Time
	Data        []byte
}
