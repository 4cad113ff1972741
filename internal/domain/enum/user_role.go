package enum

import "database/sql/driver"

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsValid reports whether the value is one of the known roles
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleUser
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(v)
	}
	return nil
}
