package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_ActiveBookingsIndex(t *testing.T) {
	schema, err := files.ReadFile("0001_schema.sql")
	require.NoError(t, err)

	assert.Contains(t, string(schema),
		"CREATE INDEX IF NOT EXISTS idx_bookings_active ON bookings (stylist_id, booking_date, start_time)\n    WHERE status <> 'cancelled';")
}
