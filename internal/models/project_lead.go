package models

import "gorm.io/gorm"

// ProjectLead is a project posting owned by exactly one user. A user may
// not own two projects with the same name.
type ProjectLead struct {
	gorm.Model

	OwnerID     uint   `gorm:"not null;uniqueIndex:idx_owner_projectname"`
	ProjectName string `gorm:"size:100;not null;uniqueIndex:idx_owner_projectname"`
	Description string `gorm:"size:250"`
	Frontend    bool   `gorm:"default:false"`
	Backend     bool   `gorm:"default:false"`

	// Relationships
	Owner    User             `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Requests []ProjectRequest `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Members  []ProjectMember  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
