package models

// User is the author entity.
type User struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// UserCreateInput is the data accepted on signup. Email uniqueness is
// enforced by the store.
type UserCreateInput struct {
	Name  *string `json:"name,omitempty"`
	Email string  `json:"email"`
}
