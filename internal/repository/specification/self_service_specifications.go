package specification

import "gorm.io/gorm"

type ByJobID struct {
	JobID string
}

func (s ByJobID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("job_id = ?", s.JobID)
}

type ByRequestType struct {
	Type string
}

func (s ByRequestType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// NewestFirst orders by creation time, latest first. Ties fall back to id
// so paging is stable.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
