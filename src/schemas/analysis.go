package schemas

// Wire types for the /analyze-trade endpoint. Field names follow the NestJS
// side's JSON contract, misspellings included ("portafolio").

type AnalyzeTradeRequest struct {
	Portafolio  Portfolio   `json:"portafolio"`
	Transaction Transaction `json:"transaction"`
	MarketData  MarketData  `json:"marketData"`
}

type AnalyzeTradeResponse struct {
	Status string `json:"status"`
}

// Portfolio is the post-transaction snapshot sent with each request. Nothing
// here is persisted; it lives for the duration of one analysis.
type Portfolio struct {
	ID       string    `json:"id"`
	Cash     float64   `json:"cash"`
	Holdings []Holding `json:"holdings"`
}

type Holding struct {
	ActiveSymbol string  `json:"activeSymbol"`
	Quantity     float64 `json:"quantity"`
}

type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

type Transaction struct {
	// PortafolioID travels on the transaction independently of Portfolio.ID;
	// the cost and behavior rules address feedback with this one.
	PortafolioID string          `json:"portafolioId"`
	ActiveSymbol string          `json:"activeSymbol"`
	Type         TransactionType `json:"type"`
	Price        float64         `json:"price"`
	Amount       float64         `json:"amount"`
}

// MarketData maps a symbol to its ticker snapshot.
type MarketData map[string]Ticker

// Ticker quote fields are pointers where the upstream feed may omit them, so
// each rule applies its own documented default instead of a silent zero.
type Ticker struct {
	Price             float64  `json:"price"`
	BestAsk           *float64 `json:"best_ask,omitempty"`
	BestBid           *float64 `json:"best_bid,omitempty"`
	PricePercentChg24 float64  `json:"price_percent_chg_24_h"`
}
