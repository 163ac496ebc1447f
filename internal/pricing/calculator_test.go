package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

func flatService(price float64) *domain.Service {
	return &domain.Service{ID: 100, Type: "tour", BasePrice: price, Currency: "PEN"}
}

func lodgingService(price float64) *domain.Service {
	return &domain.Service{ID: 200, Type: "Alojamiento", BasePrice: price, Currency: "PEN"}
}

func TestCalculate_NonPositiveQuantityIsNotPriceable(t *testing.T) {
	services := []*domain.Service{flatService(100), lodgingService(100)}

	for _, svc := range services {
		for _, quantity := range []int{0, -1, -100} {
			assert.Nil(t, Calculate(svc, "2025-06-01", "2025-06-04", quantity),
				"type=%s quantity=%d", svc.Type, quantity)
		}
	}
}

func TestCalculate_FlatRateIgnoresDates(t *testing.T) {
	svc := flatService(100)

	dateCombos := [][2]string{
		{"2025-06-01", "2025-06-04"},
		{"2025-06-01", "2025-06-01"},
		{"", ""},
		{"not-a-date", "2030-12-31"},
	}

	for _, dates := range dateCombos {
		total := Calculate(svc, dates[0], dates[1], 2)
		require.NotNil(t, total)
		assert.Equal(t, 200.0, *total, "dates=%v", dates)
	}
}

func TestCalculate_PerNight(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		quantity  int
		want      float64
	}{
		{"three nights two guests", "2025-06-01", "2025-06-04", 2, 600},
		{"one night", "2025-06-01", "2025-06-02", 1, 100},
		{"same day counts as one night", "2025-06-01", "2025-06-01", 1, 100},
		{"end before start clamps to one night", "2025-06-04", "2025-06-01", 1, 100},
		{"empty dates fall back to one night", "", "", 2, 200},
		{"unparseable start falls back to one night", "01/06/2025", "2025-06-04", 1, 100},
		{"unparseable end falls back to one night", "2025-06-01", "junk", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := Calculate(lodgingService(100), tt.startDate, tt.endDate, tt.quantity)
			require.NotNil(t, total)
			assert.Equal(t, tt.want, *total)
		})
	}
}

func TestCalculate_PerNightMonotonicInNights(t *testing.T) {
	svc := lodgingService(80)

	prev := 0.0
	for nights := 1; nights <= 10; nights++ {
		end := fmt.Sprintf("2025-06-%02d", 1+nights)
		total := Calculate(svc, "2025-06-01", end, 2)
		require.NotNil(t, total)
		assert.GreaterOrEqual(t, *total, prev, "nights=%d", nights)
		prev = *total
	}
}

func TestCalculate_MonotonicInQuantity(t *testing.T) {
	for _, svc := range []*domain.Service{flatService(75), lodgingService(75)} {
		prev := 0.0
		for quantity := 1; quantity <= 10; quantity++ {
			total := Calculate(svc, "2025-06-01", "2025-06-03", quantity)
			require.NotNil(t, total)
			assert.GreaterOrEqual(t, *total, prev, "type=%s quantity=%d", svc.Type, quantity)
			prev = *total
		}
	}
}

func TestCalculate_FreeServiceIsValid(t *testing.T) {
	total := Calculate(flatService(0), "2025-06-01", "2025-06-01", 3)
	require.NotNil(t, total)
	assert.Equal(t, 0.0, *total)
}

func TestCalculate_LodgingMarkerIsCaseInsensitive(t *testing.T) {
	svc := &domain.Service{Type: "ALOJAMIENTO", BasePrice: 50, Currency: "PEN"}
	total := Calculate(svc, "2025-06-01", "2025-06-03", 1)
	require.NotNil(t, total)
	assert.Equal(t, 100.0, *total)
}
