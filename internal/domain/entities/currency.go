package entities

// CurrencyCode is an ISO 4217 numeric currency code.
//
// Only the currencies billable through the legacy platform are supported.

type CurrencyCode int

const (
	CurrencyUSD CurrencyCode = 840
	CurrencyCAD CurrencyCode = 124
	CurrencyGBP CurrencyCode = 826
	CurrencyEUR CurrencyCode = 978
)

func (c CurrencyCode) Known() bool {
	switch c {
	case CurrencyUSD, CurrencyCAD, CurrencyGBP, CurrencyEUR:
		return true
	default:
		return false
	}
}

// Alpha returns the ISO 4217 alphabetic code. Some processors (CardConnect)
// take the alphabetic form on the wire.
func (c CurrencyCode) Alpha() string {
	switch c {
	case CurrencyUSD:
		return "USD"
	case CurrencyCAD:
		return "CAD"
	case CurrencyGBP:
		return "GBP"
	case CurrencyEUR:
		return "EUR"
	default:
		return ""
	}
}
