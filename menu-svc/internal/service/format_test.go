package service_test

import (
	"testing"
	"time"

	"savr/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{0, "₹0.00"},
		{275, "₹275.00"},
		{999, "₹999.00"},
		{1234.5, "₹1,234.50"},
		{1234567.89, "₹1,234,567.89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, service.FormatPrice(tt.price))
	}
}

func TestFormatSavings(t *testing.T) {
	assert.Equal(t, "₹45.00", service.FormatSavings(320, 275))
	assert.Equal(t, "₹1,000.00", service.FormatSavings(1500, 500))
	assert.Equal(t, "₹0.00", service.FormatSavings(100, 120))
}

func TestEpochToTimeLabel(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	assert.Equal(t, "01:00", service.EpochToTimeLabel(1739322000000, time.UTC))
	assert.Equal(t, "06:30", service.EpochToTimeLabel(1739322000000, ist))
	assert.Equal(t, "15:00", service.EpochToTimeLabel(1739372400000, time.UTC))
	assert.Equal(t, "--:--", service.EpochToTimeLabel(0, time.UTC))
	assert.Equal(t, "--:--", service.EpochToTimeLabel(-5, time.UTC))
}

func TestTimeLabelToEpoch(t *testing.T) {
	now := time.Date(2025, time.February, 12, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		label    string
		expected time.Time
		wantErr  bool
	}{
		{label: "09:30", expected: time.Date(2025, time.February, 12, 9, 30, 0, 0, time.UTC)},
		{label: " 7:05 ", expected: time.Date(2025, time.February, 12, 7, 5, 0, 0, time.UTC)},
		{label: "00:00", expected: time.Date(2025, time.February, 12, 0, 0, 0, 0, time.UTC)},
		{label: "23:59", expected: time.Date(2025, time.February, 12, 23, 59, 0, 0, time.UTC)},
		{label: "", wantErr: true},
		{label: "9", wantErr: true},
		{label: "24:00", wantErr: true},
		{label: "10:60", wantErr: true},
		{label: "ab:cd", wantErr: true},
		{label: "10:30pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			epoch, err := service.TimeLabelToEpoch(tt.label, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidTimeLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.UnixMilli(), epoch)
		})
	}
}

func TestTimeLabel_roundTrip(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, time.February, 12, 12, 0, 0, 0, ist)

	epoch, err := service.TimeLabelToEpoch("21:45", now)

	require.NoError(t, err)
	assert.Equal(t, "21:45", service.EpochToTimeLabel(epoch, ist))
}
