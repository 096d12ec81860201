package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string   `gorm:"not null;unique"`
	Password string   `gorm:"not null"`
	Active   bool     `gorm:"not null;default:true"`
	Staff    bool     `gorm:"not null;default:false"`
	Groups   []Group  `gorm:"many2many:user_groups;"`
	Reviews  []Review `gorm:"constraint:OnDelete:CASCADE;"`
}

// InGroup reports whether the user belongs to the named group.
// Groups must be preloaded.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// GroupNames returns the names of all groups the user belongs to.
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}
