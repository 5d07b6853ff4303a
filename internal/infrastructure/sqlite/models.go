package sqlite

import (
	"time"

	"github.com/zjrosen/digitduel/internal/runs/domain"
)

// RunModel represents the database row for the runs table. Fields map
// directly to SQL columns; time values are stored as Unix timestamps.
type RunModel struct {
	ID         int64
	GUID       string
	DigitCount int64
	A          string
	B          string
	MaxC       string
	MaxD       string
	MaxProduct string
	MinC       string
	MinD       string
	MinProduct string
	Verified   *int64 // nullable: NULL = not checked against the oracle
	CreatedAt  int64  // Unix timestamp
}

// toRunModel converts a domain Run entity to a database RunModel.
func toRunModel(r *domain.Run) *RunModel {
	m := &RunModel{
		ID:         r.ID(),
		GUID:       r.GUID(),
		DigitCount: int64(r.DigitCount()),
		A:          r.A(),
		B:          r.B(),
		MaxC:       r.MaxC(),
		MaxD:       r.MaxD(),
		MaxProduct: r.MaxProduct(),
		MinC:       r.MinC(),
		MinD:       r.MinD(),
		MinProduct: r.MinProduct(),
		CreatedAt:  r.CreatedAt().Unix(),
	}
	if r.Verified() != nil {
		v := int64(0)
		if *r.Verified() {
			v = 1
		}
		m.Verified = &v
	}
	return m
}

// toDomain converts a database RunModel to a domain Run entity.
func (m *RunModel) toDomain() *domain.Run {
	var verified *bool
	if m.Verified != nil {
		v := *m.Verified != 0
		verified = &v
	}
	return domain.ReconstituteRun(
		m.ID,
		m.GUID,
		domain.RunInputs{
			DigitCount: int(m.DigitCount),
			A:          m.A,
			B:          m.B,
			MaxC:       m.MaxC,
			MaxD:       m.MaxD,
			MaxProduct: m.MaxProduct,
			MinC:       m.MinC,
			MinD:       m.MinD,
			MinProduct: m.MinProduct,
		},
		verified,
		time.Unix(m.CreatedAt, 0),
	)
}
