package models

import "gorm.io/gorm"

// ProjectRequest is a pending join request by a member against a project
// lead, unique per (project, member) pair.
type ProjectRequest struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;uniqueIndex:idx_request_project_member"`
	MemberID  uint   `gorm:"not null;uniqueIndex:idx_request_project_member"`
	Message   string `gorm:"size:250"`

	// Relationships
	Project ProjectLead `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Member  User        `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
