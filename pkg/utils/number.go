package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatThousands formata um número com separador de milhares (estilo en-US),
// sem casas decimais e sem notação científica.
func FormatThousands(f float64) string {
	n := int64(math.Round(f))

	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	if negative {
		return "-" + s
	}

	return s
}

// FormatCurrency formata um valor monetário com duas casas decimais fixas.
func FormatCurrency(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
