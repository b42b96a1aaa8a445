package models

// Operator represents a back-office user row.
type Operator struct {
	OperatorID   string `json:"operatorID" db:"operator_id"`
	Username     string `json:"username" db:"username"`
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
	AuditFields
}
