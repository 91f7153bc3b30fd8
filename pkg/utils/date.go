package utils

import "time"

// Today retorna a data atual formatada (yyyy-MM-dd) no fuso horário da conta.
// Se o fuso for desconhecido, usa o fuso local.
func Today(timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.Local
	}

	return time.Now().In(loc).Format("2006-01-02")
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
