package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
)

func TestPriceFor(t *testing.T) {
	// Passenger kilometres cost 1.0, cargo kilometres 2.0.
	assert.Equal(t, 100.0, domain.PriceFor(domain.KindPassenger, 100))
	assert.Equal(t, 120.0, domain.PriceFor(domain.KindCargo, 60))
	assert.Equal(t, 1.0, domain.PriceFor(domain.KindPassenger, 1))
	assert.Equal(t, 2.0, domain.PriceFor(domain.KindCargo, 1))
}
