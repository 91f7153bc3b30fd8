package domain

import "fmt"

// DateRange é um seletor de intervalo relativo aceito pelas consultas de relatório
type DateRange string

const (
	DateRangeToday      DateRange = "TODAY"
	DateRangeYesterday  DateRange = "YESTERDAY"
	DateRangeLast7Days  DateRange = "LAST_7_DAYS"
	DateRangeLast14Days DateRange = "LAST_14_DAYS"
	DateRangeLast30Days DateRange = "LAST_30_DAYS"
)

var validDateRanges = map[DateRange]bool{
	DateRangeToday:      true,
	DateRangeYesterday:  true,
	DateRangeLast7Days:  true,
	DateRangeLast14Days: true,
	DateRangeLast30Days: true,
}

// Validate verifica se o seletor é um dos intervalos suportados
func (d DateRange) Validate() error {
	if !validDateRanges[d] {
		return fmt.Errorf("intervalo de datas inválido: %q (valores aceitos: TODAY, YESTERDAY, LAST_7_DAYS, LAST_14_DAYS, LAST_30_DAYS)", string(d))
	}
	return nil
}

func (d DateRange) String() string {
	return string(d)
}
