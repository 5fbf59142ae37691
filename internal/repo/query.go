package repo

import (
	"math"

	"gorm.io/gorm"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

// applyWindow adds the LIMIT/OFFSET pair for a listing query. SQLite and
// MySQL reject an OFFSET without a LIMIT, so an offset on an unrestricted
// window gets the portable all-rows limit.
func applyWindow(tx *gorm.DB, q domain.ListQuery) *gorm.DB {
	limit := q.Limit
	if limit <= 0 {
		if q.Offset <= 0 {
			return tx
		}
		limit = math.MaxInt32
	}
	return tx.Limit(limit).Offset(q.Offset)
}
