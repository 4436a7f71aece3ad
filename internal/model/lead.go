package model

import (
	"context"
	"time"
)

// LeadStore defines persistence operations for leads.
type LeadStore interface {
	Create(ctx context.Context, lead Lead) (Lead, error)
	GetAll(ctx context.Context) ([]Lead, error)
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	CountPerDay(ctx context.Context, since time.Time) ([]DayCount, error)
}

// Lead represents a visitor-submitted contact record. Leads are immutable
// once created; they are only read or aggregated afterwards.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitLeadParams contains parameters to submit a lead.
type SubmitLeadParams struct {
	Name      string
	Email     string
	Company   string
	Message   string
	IP        string
	UserAgent string
}

// DayCount is the number of leads created on a single calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}
