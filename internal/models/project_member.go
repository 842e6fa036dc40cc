package models

import "gorm.io/gorm"

// ProjectMember is an accepted join request: the member now belongs to the
// project's team. Unique per (project, member) pair.
type ProjectMember struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;uniqueIndex:idx_member_project_member"`
	MemberID  uint   `gorm:"not null;uniqueIndex:idx_member_project_member"`
	Message   string `gorm:"size:250"`

	// Relationships
	Project ProjectLead `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Member  User        `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
