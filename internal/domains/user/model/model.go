package model

import (
	"time"

	"lodgy/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                  = "id"
	FieldEmail               = "email"
	FieldPassword            = "password"
	FieldRole                = "role"
	FieldFullName            = "full_name"
	FieldPhone               = "phone"
	FieldStatus              = "status"
	FieldActive              = "active"
	FieldLastLogin           = "last_login"
	FieldResetToken          = "reset_token"
	FieldResetTokenExpiresAt = "reset_token_expires_at"
)

type User struct {
	ID                  string  `db:"id"`
	Email               string  `db:"email"`
	Password            string  `db:"password"`
	Role                string  `db:"role"`
	FullName            *string `db:"full_name"`
	Phone               *string `db:"phone"`
	Status              string  `db:"status"`
	Active              bool    `db:"active"`
	LastLogin           *string `db:"last_login"`
	ResetToken          *string    `db:"reset_token"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"`
	model.Metadata
}
