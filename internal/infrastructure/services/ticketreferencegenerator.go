package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/shared/db"
)

// TicketReferenceGenerator produces daily-sequenced references like T-20250131-0042.
type TicketReferenceGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewTicketReferenceGenerator(db *gorm.DB) *TicketReferenceGenerator {
	return &TicketReferenceGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *TicketReferenceGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("T-%s-%04d", dateStr, seq), nil
}

func (g *TicketReferenceGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	// MAX() over zero rows yields NULL, so the first ticket of a day
	// has to scan into a nullable string.
	var maxReference sql.NullString
	pattern := fmt.Sprintf("T-%s-%%", dateStr)

	err := db.GetTxFromContext(ctx, g.db).
		Table("tickets").
		Select("MAX(reference)").
		Where("reference LIKE ?", pattern).
		Scan(&maxReference).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max ticket reference: %w", err)
	}

	seq := 1
	if maxReference.Valid && maxReference.String != "" {
		fmt.Sscanf(maxReference.String, fmt.Sprintf("T-%s-%%d", dateStr), &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
