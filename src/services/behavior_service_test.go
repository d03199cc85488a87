package services_test

import (
	"testing"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
	"trade-analyzer/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBehaviorService(t *testing.T) {
	tests := []struct {
		name         string
		thresholds   config.BehaviorConfig
		transaction  schemas.Transaction
		priceChange  float64
		wantNudge    bool
		wantFragment string
	}{
		{
			name:         "buy after a rise nudges about FOMO",
			transaction:  schemas.Transaction{PortafolioID: "p1", ActiveSymbol: "BTC", Type: schemas.TransactionTypeBuy},
			priceChange:  12.5,
			wantNudge:    true,
			wantFragment: "FOMO",
		},
		{
			name:         "sell after a drop nudges about panic selling",
			transaction:  schemas.Transaction{PortafolioID: "p1", ActiveSymbol: "BTC", Type: schemas.TransactionTypeSell},
			priceChange:  -8.25,
			wantNudge:    true,
			wantFragment: "panic sell",
		},
		{
			name:        "buy after a drop is quiet",
			transaction: schemas.Transaction{ActiveSymbol: "BTC", Type: schemas.TransactionTypeBuy},
			priceChange: -5,
		},
		{
			name:        "sell after a rise is quiet",
			transaction: schemas.Transaction{ActiveSymbol: "BTC", Type: schemas.TransactionTypeSell},
			priceChange: 5,
		},
		{
			name:        "unknown transaction type is quiet",
			transaction: schemas.Transaction{ActiveSymbol: "BTC", Type: "HOLD"},
			priceChange: 50,
		},
		{
			name:        "rise below production threshold is quiet",
			thresholds:  config.BehaviorConfig{FomoChangeThreshold: 20, PanicChangeThreshold: 20},
			transaction: schemas.Transaction{ActiveSymbol: "BTC", Type: schemas.TransactionTypeBuy},
			priceChange: 15,
		},
		{
			name:         "rise above production threshold nudges",
			thresholds:   config.BehaviorConfig{FomoChangeThreshold: 20, PanicChangeThreshold: 20},
			transaction:  schemas.Transaction{PortafolioID: "p1", ActiveSymbol: "BTC", Type: schemas.TransactionTypeBuy},
			priceChange:  25,
			wantNudge:    true,
			wantFragment: "FOMO",
		},
		{
			name:        "drop above negative production threshold is quiet",
			thresholds:  config.BehaviorConfig{FomoChangeThreshold: 20, PanicChangeThreshold: 20},
			transaction: schemas.Transaction{ActiveSymbol: "BTC", Type: schemas.TransactionTypeSell},
			priceChange: -15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := services.NewBehaviorService(tt.thresholds)
			marketData := schemas.MarketData{
				"BTC": {Price: 100, PricePercentChg24: tt.priceChange},
			}

			messages := service.Analyze(tt.transaction, marketData)

			if !tt.wantNudge {
				assert.Empty(t, messages)
				return
			}
			require.Len(t, messages, 1)
			assert.Equal(t, schemas.FeedbackTypeBehavioralNudge, messages[0].Type)
			assert.Equal(t, "p1", messages[0].PortafolioID)
			assert.Contains(t, messages[0].Message, tt.wantFragment)
		})
	}
}

func TestBehaviorServiceSkipsUnknownSymbol(t *testing.T) {
	service := services.NewBehaviorService(config.DefaultAnalysisConfig().Behavior)
	transaction := schemas.Transaction{ActiveSymbol: "BTC", Type: schemas.TransactionTypeBuy}

	assert.Empty(t, service.Analyze(transaction, schemas.MarketData{}))
}
