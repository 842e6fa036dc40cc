package models

import "gorm.io/gorm"

// ProjectRejection records that a lead turned down a member's join request.
// Not unique: a member may re-request a project and be rejected again.
type ProjectRejection struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index"`
	MemberID  uint   `gorm:"not null;index"`
	Message   string `gorm:"size:250"`

	// Relationships
	Project ProjectLead `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Member  User        `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
