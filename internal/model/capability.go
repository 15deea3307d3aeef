package model

// Capabilities is the per-request capability record for one user on one
// event. It is derived, never persisted, and valid for a single request.
type Capabilities struct {
	IsAdmin       bool `json:"is_admin"`
	IsStaffMember bool `json:"is_staff_member"`
	CanApprove    bool `json:"can_approve"`
	CanStaff      bool `json:"can_staff"`
	CanUnstaff    bool `json:"can_unstaff"`
	CanCancel     bool `json:"can_cancel"`
}
