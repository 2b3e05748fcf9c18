package repository

import (
	domainRepo "github.com/sangkips/lanchonete-pos/internal/domain/repository"
	"gorm.io/gorm"
)

// OnDate returns a GORM scope that keeps rows recorded on date.
// An empty date leaves the query unfiltered.
func OnDate(date string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if date == "" {
			return db
		}
		return db.Where("date = ?", date)
	}
}

// InRange returns a GORM scope that keeps rows whose date falls inside r.
// Dates are stored as YYYY-MM-DD so string comparison orders them.
func InRange(r domainRepo.DateRange) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.Start == r.End {
			return OnDate(r.Start)(db)
		}
		return db.Where("date >= ? AND date <= ?", r.Start, r.End)
	}
}

// Newest orders rows by insertion, most recent first.
func Newest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
