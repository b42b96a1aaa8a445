package domain

// Operator is a back-office user of the rent book.
type Operator struct {
	OperatorID   string `json:"operatorID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
