package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Validate(t *testing.T) {
	valid := []DateRange{
		DateRangeToday,
		DateRangeYesterday,
		DateRangeLast7Days,
		DateRangeLast14Days,
		DateRangeLast30Days,
	}

	for _, dr := range valid {
		assert.NoError(t, dr.Validate(), "intervalo %s deveria ser aceito", dr)
	}

	invalid := []DateRange{"", "LAST_90_DAYS", "last_7_days", "THIS_MONTH"}

	for _, dr := range invalid {
		assert.Error(t, dr.Validate(), "intervalo %q deveria ser rejeitado", dr)
	}
}
