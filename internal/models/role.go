package models

import "fmt"

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

type Capability int

const (
	CapViewOwn Capability = iota
	CapCreateRequests
	CapApproveRequests
	CapDeleteRequests
	CapManageBalances
	CapManageSettings
	CapManageRestrictions
	CapSendNotifications
)

var capabilities = map[Role]map[Capability]struct{}{
	RoleUser: {
		CapViewOwn:        {},
		CapCreateRequests: {},
	},
	RoleAdmin: {
		CapViewOwn:            {},
		CapApproveRequests:    {},
		CapManageRestrictions: {},
		CapSendNotifications:  {},
	},
	RoleSuperAdmin: {
		CapViewOwn:            {},
		CapApproveRequests:    {},
		CapDeleteRequests:     {},
		CapManageBalances:     {},
		CapManageSettings:     {},
		CapManageRestrictions: {},
		CapSendNotifications:  {},
	},
}

// ParseRole accepts only the closed set of known roles.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := capabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Can(c Capability) bool {
	_, ok := capabilities[r][c]
	return ok
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID int64
	Role   Role
}
