package models

import "time"

// Auth binds one external-provider identity to one local User. A user may
// hold several of these (multi-provider linking); the (provider, providerId)
// pair is unique across the table.
type Auth struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Provider   string    `json:"provider" gorm:"size:32;uniqueIndex:idx_provider_identity"`
	ProviderID string    `json:"providerId" gorm:"size:255;uniqueIndex:idx_provider_identity"`
	Avatar     *string   `json:"avatar"`
	UserID     uint      `json:"userId" gorm:"index;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt" gorm:"autoCreateTime"`
}
