package document

type Category string

const (
	CategoryHealthReport   Category = "health_report"
	CategoryCertificate    Category = "certificate"
	CategoryContract       Category = "contract"
	CategoryIdentification Category = "identification"
	CategoryOther          Category = "other"
)

var AllCategories = []Category{
	CategoryHealthReport,
	CategoryCertificate,
	CategoryContract,
	CategoryIdentification,
	CategoryOther,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryHealthReport, CategoryCertificate, CategoryContract, CategoryIdentification, CategoryOther:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusExpired  Status = "expired"
)

var AllStatuses = []Status{StatusActive, StatusArchived, StatusExpired}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusArchived, StatusExpired:
		return true
	}
	return false
}
