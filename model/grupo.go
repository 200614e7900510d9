package model

// Permission is an entry of the backend permission catalogue.
type Permission struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// UserGroup bundles permissions granted to its members.
type UserGroup struct {
	ID          int64        `json:"id"`
	Nome        string       `json:"nome"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the group grants the permission with the given id.
func (g UserGroup) HasPermission(id int64) bool {
	for _, p := range g.Permissions {
		if p.ID == id {
			return true
		}
	}
	return false
}
