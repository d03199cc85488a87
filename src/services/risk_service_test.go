package services_test

import (
	"testing"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
	"trade-analyzer/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRiskService() *services.RiskService {
	cfg := config.DefaultAnalysisConfig()
	return services.NewRiskService(cfg.Risk, services.NewValuationService())
}

func TestRiskServiceAllIn(t *testing.T) {
	tests := []struct {
		name        string
		portfolio   schemas.Portfolio
		transaction schemas.Transaction
		wantAlert   bool
	}{
		{
			// tx cost 90, pre-tx cash 100, exactly the 90% boundary.
			name:        "exactly at threshold does not alert",
			portfolio:   schemas.Portfolio{ID: "p1", Cash: 10},
			transaction: schemas.Transaction{Type: schemas.TransactionTypeBuy, Amount: 10, Price: 9, ActiveSymbol: "X"},
			wantAlert:   false,
		},
		{
			// tx cost 91, pre-tx cash 101, ratio just above 90%.
			name:        "above threshold alerts",
			portfolio:   schemas.Portfolio{ID: "p1", Cash: 10},
			transaction: schemas.Transaction{Type: schemas.TransactionTypeBuy, Amount: 10, Price: 9.1, ActiveSymbol: "X"},
			wantAlert:   true,
		},
		{
			name:        "sell never triggers all-in",
			portfolio:   schemas.Portfolio{ID: "p1", Cash: 1},
			transaction: schemas.Transaction{Type: schemas.TransactionTypeSell, Amount: 100, Price: 100, ActiveSymbol: "X"},
			wantAlert:   false,
		},
		{
			name:        "zero pre-transaction cash is skipped",
			portfolio:   schemas.Portfolio{ID: "p1", Cash: 0},
			transaction: schemas.Transaction{Type: schemas.TransactionTypeBuy, Amount: 0, Price: 0, ActiveSymbol: "X"},
			wantAlert:   false,
		},
	}

	service := newRiskService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := service.Analyze(tt.portfolio, tt.transaction, schemas.MarketData{})

			if !tt.wantAlert {
				assert.Empty(t, messages)
				return
			}
			require.Len(t, messages, 1)
			assert.Equal(t, schemas.FeedbackTypeRiskAlert, messages[0].Type)
			assert.Equal(t, "p1", messages[0].PortafolioID)
			assert.Contains(t, messages[0].Message, "available cash")
			assert.Contains(t, messages[0].Message, "X")
		})
	}
}

func TestRiskServiceConcentration(t *testing.T) {
	service := newRiskService()

	t.Run("single holding at 100 percent alerts", func(t *testing.T) {
		portfolio := schemas.Portfolio{
			ID:       "p1",
			Cash:     0,
			Holdings: []schemas.Holding{{ActiveSymbol: "BTC", Quantity: 1}},
		}
		marketData := schemas.MarketData{"BTC": {Price: 70000}}

		messages := service.Analyze(portfolio, schemas.Transaction{Type: schemas.TransactionTypeSell}, marketData)

		require.Len(t, messages, 1)
		assert.Equal(t, schemas.FeedbackTypeRiskAlert, messages[0].Type)
		assert.Contains(t, messages[0].Message, "100%")
		assert.Contains(t, messages[0].Message, "BTC")
	})

	t.Run("balanced portfolio does not alert", func(t *testing.T) {
		portfolio := schemas.Portfolio{
			ID:   "p1",
			Cash: 0,
			Holdings: []schemas.Holding{
				{ActiveSymbol: "BTC", Quantity: 1},
				{ActiveSymbol: "ETH", Quantity: 1},
			},
		}
		marketData := schemas.MarketData{
			"BTC": {Price: 500},
			"ETH": {Price: 500},
		}

		messages := service.Analyze(portfolio, schemas.Transaction{Type: schemas.TransactionTypeSell}, marketData)

		assert.Empty(t, messages)
	})

	t.Run("one alert per offending symbol in holdings order", func(t *testing.T) {
		// Short position makes the remaining long exceed 100% of total.
		portfolio := schemas.Portfolio{
			ID:   "p1",
			Cash: 0,
			Holdings: []schemas.Holding{
				{ActiveSymbol: "AAA", Quantity: 10},
				{ActiveSymbol: "BBB", Quantity: -2},
				{ActiveSymbol: "CCC", Quantity: 9},
			},
		}
		marketData := schemas.MarketData{
			"AAA": {Price: 10},
			"BBB": {Price: 10},
			"CCC": {Price: 10},
		}

		// total = 100 - 20 + 90 = 170; AAA 58.8%, CCC 52.9% -> none over 60.
		messages := service.Analyze(portfolio, schemas.Transaction{Type: schemas.TransactionTypeSell}, marketData)
		assert.Empty(t, messages)

		// Drop CCC's price so AAA dominates.
		marketData["CCC"] = schemas.Ticker{Price: 1}
		messages = service.Analyze(portfolio, schemas.Transaction{Type: schemas.TransactionTypeSell}, marketData)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0].Message, "AAA")
	})

	t.Run("zero total value emits nothing", func(t *testing.T) {
		portfolio := schemas.Portfolio{
			ID:       "p1",
			Cash:     0,
			Holdings: []schemas.Holding{{ActiveSymbol: "BTC", Quantity: 1}},
		}
		marketData := schemas.MarketData{"BTC": {Price: 0}}

		messages := service.Analyze(portfolio, schemas.Transaction{Type: schemas.TransactionTypeSell}, marketData)

		assert.Empty(t, messages)
	})

	t.Run("all-in alert precedes concentration alerts", func(t *testing.T) {
		portfolio := schemas.Portfolio{
			ID:       "p1",
			Cash:     0,
			Holdings: []schemas.Holding{{ActiveSymbol: "BTC", Quantity: 1}},
		}
		marketData := schemas.MarketData{"BTC": {Price: 70000}}
		transaction := schemas.Transaction{
			Type: schemas.TransactionTypeBuy, Amount: 1, Price: 70000, ActiveSymbol: "BTC",
		}

		messages := service.Analyze(portfolio, transaction, marketData)

		require.Len(t, messages, 2)
		assert.Contains(t, messages[0].Message, "available cash")
		assert.Contains(t, messages[1].Message, "diversifying")
	})
}
