package entity

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "USER"
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionInactive SubscriptionStatus = "INACTIVE"
	SubscriptionPending  SubscriptionStatus = "PENDING"
)

type Profile struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	Password     string             `json:"-"`
	Role         UserRole           `json:"role"`
	Subscription SubscriptionStatus `json:"subscription_status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DisplayName derives a presentable name from the email local part.
func (p *Profile) DisplayName() string {
	if at := strings.Index(p.Email, "@"); at > 0 {
		return p.Email[:at]
	}
	return p.Email
}
