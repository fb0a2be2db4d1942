package feecalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

func structure(id, classID, quarterID string, total int64, createdAt time.Time) models.FeeStructure {
	return models.FeeStructure{
		ID:        id,
		ClassID:   classID,
		QuarterID: quarterID,
		TotalFee:  decimal.NewFromInt(total),
		CreatedAt: createdAt,
	}
}

func TestResolveFeeStructure(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	all := []models.FeeStructure{
		structure("fs-1", "class-a", "q1", 5000, base),
		structure("fs-2", "class-a", "q2", 5200, base),
		structure("fs-3", "class-b", "q1", 4000, base),
	}

	fs := ResolveFeeStructure("class-a", "q1", all)
	require.NotNil(t, fs)
	assert.Equal(t, "fs-1", fs.ID)

	fs = ResolveFeeStructure("class-b", "q1", all)
	require.NotNil(t, fs)
	assert.Equal(t, "fs-3", fs.ID)

	assert.Nil(t, ResolveFeeStructure("class-c", "q1", all), "missing structure resolves to nil, not an error")
	assert.Nil(t, ResolveFeeStructure("class-a", "q9", all))
	assert.Nil(t, ResolveFeeStructure("class-a", "q1", nil))
}

func TestResolveFeeStructureDuplicatesPickNewest(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	all := []models.FeeStructure{
		structure("fs-old", "class-a", "q1", 4500, base),
		structure("fs-new", "class-a", "q1", 5000, base.Add(48*time.Hour)),
	}

	fs := ResolveFeeStructure("class-a", "q1", all)
	require.NotNil(t, fs)
	assert.Equal(t, "fs-new", fs.ID, "most recently created duplicate wins")

	// Same result regardless of slice order.
	all[0], all[1] = all[1], all[0]
	fs = ResolveFeeStructure("class-a", "q1", all)
	require.NotNil(t, fs)
	assert.Equal(t, "fs-new", fs.ID)
}

func TestResolveFeeStructureDuplicateSameTimestamp(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	all := []models.FeeStructure{
		structure("fs-a", "class-a", "q1", 4500, base),
		structure("fs-b", "class-a", "q1", 5000, base),
	}

	first := ResolveFeeStructure("class-a", "q1", all)
	all[0], all[1] = all[1], all[0]
	second := ResolveFeeStructure("class-a", "q1", all)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID, "tiebreak must be order-independent")
	assert.Equal(t, "fs-b", first.ID)
}
