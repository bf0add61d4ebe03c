package entity

import (
	"kinohub/pkg/permission"
)

// User holds the registered account. ConfirmationCode is the bcrypt hash
// of the last code issued at signup; the plaintext only ever travels by
// email.
type User struct {
	Base
	Username         string          `db:"username"`
	Email            string          `db:"email"`
	FirstName        string          `db:"first_name"`
	LastName         string          `db:"last_name"`
	Bio              string          `db:"bio"`
	Role             permission.Role `db:"role"`
	Superuser        bool            `db:"is_superuser"`
	ConfirmationCode string          `db:"confirmation_code"`
}
