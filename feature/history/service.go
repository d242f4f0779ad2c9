package history

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultLimit bounds how many exchanges a listing returns by default.
const DefaultLimit = 50

// Service records and lists past exchanges.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Record stores a completed exchange.
func (s *Service) Record(rayID, query, answer string) error {
	exchange := Exchange{RayID: rayID, Query: query, Answer: answer}
	if err := s.db.Create(&exchange).Error; err != nil {
		return err
	}
	s.logger.Debug("Recorded exchange", zap.Uint("id", exchange.ID), zap.String("ray_id", rayID))
	return nil
}

// Recent returns the most recent exchanges, newest first.
func (s *Service) Recent(limit int) ([]Exchange, error) {
	if limit <= 0 || limit > 1000 {
		limit = DefaultLimit
	}

	var exchanges []Exchange
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&exchanges).Error; err != nil {
		return nil, err
	}
	return exchanges, nil
}
