package entity

import "time"

// AuditAction names an administrative action recorded in the audit log.
type AuditAction string

const (
	AuditActionApproveProvider AuditAction = "approve_provider"
	AuditActionRejectProvider  AuditAction = "reject_provider"
)

// AdminAuditLog is an append-only record of an administrative action.
type AdminAuditLog struct {
	ID        string         `json:"id"`
	ActorUID  string         `json:"actor_uid"`
	Action    AuditAction    `json:"action"`
	Detail    map[string]any `json:"detail"`
	CreatedAt time.Time      `json:"created_at"`
}
