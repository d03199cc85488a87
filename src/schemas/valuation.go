package schemas

// AssetValue is one holding priced against the market snapshot.
type AssetValue struct {
	Symbol string
	Value  float64
}

// PortfolioValuation keeps asset values in holdings order so downstream
// alerts come out deterministically.
type PortfolioValuation struct {
	AssetValues []AssetValue
	TotalValue  float64
}
