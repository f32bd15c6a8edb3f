package model

// User mirrors the remote API's user record.
type User struct {
	ID         int     `json:"id" validate:"required"`
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      *string `json:"email" validate:"omitempty,email"`
	IsExternal bool    `json:"is_external"`
}

func (u *User) Validate() error {
	if err := GetValidator().Struct(u); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// HasEmail is false for a nil or empty email.
func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}

// WithEmail returns a copy of u carrying email.
func (u User) WithEmail(email string) User {
	u.Email = &email
	return u
}

type UserCreate struct {
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      *string `json:"email" validate:"omitempty,email"`
	IsExternal bool    `json:"is_external"`
}

func (r *UserCreate) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// UserUpdate is a partial patch; nil fields are left untouched upstream.
type UserUpdate struct {
	Firstname  *string `json:"firstname,omitempty"`
	Lastname   *string `json:"lastname,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	IsExternal *bool   `json:"is_external,omitempty"`
}

func (r *UserUpdate) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return NewValidationError(err)
	}
	return nil
}

func (r *UserUpdate) IsEmpty() bool {
	return r.Firstname == nil && r.Lastname == nil && r.Email == nil && r.IsExternal == nil
}

// StringPtr is a convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}
