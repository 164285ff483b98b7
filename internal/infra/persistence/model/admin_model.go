package model

import "time"

// AnnouncementModel is the document shape of the 'announcements' collection.
type AnnouncementModel struct {
	Title     string    `firestore:"title"`
	Message   string    `firestore:"message"`
	Audience  string    `firestore:"audience"`
	CreatedBy string    `firestore:"createdBy"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// AdminAuditLogModel is the document shape of the 'adminAuditLogs' collection.
type AdminAuditLogModel struct {
	ActorUID  string         `firestore:"actorUid"`
	Action    string         `firestore:"action"`
	Detail    map[string]any `firestore:"detail"`
	CreatedAt time.Time      `firestore:"createdAt"`
}
