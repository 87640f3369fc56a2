package models

import "time"

// AccountType distinguishes regular users from administrators.
type AccountType string

const (
	AccountTypeNormal AccountType = "NORMAL"
	AccountTypeAdmin  AccountType = "ADMIN"
)

// Account is a registry user. Accounts are identified towards the engine by
// their email, which is also the subject of the bearer token.
type Account struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Type      AccountType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}

// IsAdmin reports whether the account has the administrator role.
func (a Account) IsAdmin() bool {
	return a.Type == AccountTypeAdmin
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// GroupType distinguishes user-managed groups from the system public group.
type GroupType string

const (
	GroupTypePrivate GroupType = "PRIVATE"
	GroupTypePublic  GroupType = "PUBLIC"
)

// PublicGroupUUID is the well-known identifier of the group every account
// implicitly belongs to. Read permissions granted to it make an entry or a
// folder world-readable.
const PublicGroupUUID = "8746a64b-abd5-4838-a332-02c356bbeac0"

// Group is a named set of accounts that permissions can be granted to.
type Group struct {
	ID    int64     `json:"id"`
	UUID  string    `json:"uuid"`
	Label string    `json:"label"`
	Type  GroupType `json:"type"`
}

// TableName returns the name of the database table
// associated with the Group model.
func (g Group) TableName() string {
	return "groups"
}

// Principal is the resolved identity of the acting user: its account, the
// groups it is an explicit member of, and the system public group every
// account implicitly belongs to.
type Principal struct {
	Account       Account
	GroupIDs      []int64
	PublicGroupID int64
}

// ReadGroupIDs returns the explicit groups plus the public group: every group
// whose read grants apply to this principal.
func (p Principal) ReadGroupIDs() []int64 {
	ids := make([]int64, 0, len(p.GroupIDs)+1)
	ids = append(ids, p.GroupIDs...)
	if p.PublicGroupID != 0 {
		ids = append(ids, p.PublicGroupID)
	}
	return ids
}
