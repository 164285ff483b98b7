package model

import "time"

// ProviderServiceModel is one entry of a provider's service catalog.
type ProviderServiceModel struct {
	ServiceID string  `firestore:"serviceId"`
	Name      string  `firestore:"name"`
	Price     float64 `firestore:"price"`
}

// ProviderModel is the document shape of the 'providers' collection.
type ProviderModel struct {
	OwnerUID           string                 `firestore:"ownerUid"`
	Name               string                 `firestore:"name"`
	CategoryID         string                 `firestore:"categoryId"`
	Status             string                 `firestore:"status"`
	Verified           bool                   `firestore:"verified"`
	VerificationStatus string                 `firestore:"verificationStatus"`
	VerifiedAt         *time.Time             `firestore:"verifiedAt,omitempty"`
	VerifiedBy         string                 `firestore:"verifiedBy,omitempty"`
	AdminNotes         string                 `firestore:"adminNotes,omitempty"`
	Lat                float64                `firestore:"lat"`
	Lng                float64                `firestore:"lng"`
	Services           []ProviderServiceModel `firestore:"services"`
	RatingAvg          float64                `firestore:"ratingAvg"`
	RatingCount        int                    `firestore:"ratingCount"`
}
