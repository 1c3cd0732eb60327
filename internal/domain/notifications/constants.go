package notifications

const (
	TypeScreeningReminder  = "screening_reminder"
	TypeScreeningConflict  = "screening_conflict"
	TypeDocumentExpiring   = "document_expiring"
	TypeDocumentExpired    = "document_expired"
	TypeQuoteDecision      = "quote_decision"
	TypeScreeningCompleted = "screening_completed"
)
