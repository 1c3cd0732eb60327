package auth

const (
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleViewer = "Viewer"
)

const (
	PermCompaniesRead        = "companies.read"
	PermCompaniesWrite       = "companies.write"
	PermWorkersRead          = "workers.read"
	PermWorkersWrite         = "workers.write"
	PermScreeningsRead       = "screenings.read"
	PermScreeningsWrite      = "screenings.write"
	PermScreeningsTransition = "screenings.transition"
	PermDocumentsRead        = "documents.read"
	PermDocumentsWrite       = "documents.write"
	PermQuotesRead           = "quotes.read"
	PermQuotesWrite          = "quotes.write"
	PermQuotesDecide         = "quotes.decide"
	PermHealthTestsRead      = "healthtests.read"
	PermHealthTestsWrite     = "healthtests.write"
	PermReportsRead          = "reports.read"
	PermNotificationsRead    = "notifications.read"
	PermAuditRead            = "audit.read"
	PermSystemAdmin          = "admin.system"
)

var RolePermissions = map[string][]string{
	RoleViewer: {
		PermCompaniesRead,
		PermWorkersRead,
		PermScreeningsRead,
		PermDocumentsRead,
		PermQuotesRead,
		PermHealthTestsRead,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleStaff: {
		PermCompaniesRead,
		PermCompaniesWrite,
		PermWorkersRead,
		PermWorkersWrite,
		PermScreeningsRead,
		PermScreeningsWrite,
		PermScreeningsTransition,
		PermDocumentsRead,
		PermDocumentsWrite,
		PermQuotesRead,
		PermQuotesWrite,
		PermHealthTestsRead,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleAdmin: {
		PermCompaniesRead,
		PermCompaniesWrite,
		PermWorkersRead,
		PermWorkersWrite,
		PermScreeningsRead,
		PermScreeningsWrite,
		PermScreeningsTransition,
		PermDocumentsRead,
		PermDocumentsWrite,
		PermQuotesRead,
		PermQuotesWrite,
		PermQuotesDecide,
		PermHealthTestsRead,
		PermHealthTestsWrite,
		PermReportsRead,
		PermNotificationsRead,
		PermAuditRead,
		PermSystemAdmin,
	},
}
