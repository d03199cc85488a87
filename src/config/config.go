package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Analysis        AnalysisConfig       `mapstructure:"analysis"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type ExternalClientConfig struct {
	Feedback FeedbackConfig `mapstructure:"feedback"`
}

type FeedbackConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// AnalysisConfig carries every rule threshold so evaluators receive them at
// construction time instead of reading package-level constants.
type AnalysisConfig struct {
	Risk     RiskConfig     `mapstructure:"risk"`
	Costs    CostConfig     `mapstructure:"costs"`
	Behavior BehaviorConfig `mapstructure:"behavior"`
}

type RiskConfig struct {
	// AllInCashRatio is the fraction of pre-transaction cash a single BUY may
	// consume before an alert fires (strictly greater-than).
	AllInCashRatio float64 `mapstructure:"allInCashRatio"`
	// ConcentrationLimit is a percentage of total portfolio value.
	ConcentrationLimit float64 `mapstructure:"concentrationLimit"`
}

type CostConfig struct {
	FeeRate           float64 `mapstructure:"feeRate"`
	SlippageTolerance float64 `mapstructure:"slippageTolerance"`
	// NotifyCommission toggles the informational commission notification.
	// The commission is always computed; it is only dispatched when enabled.
	NotifyCommission bool `mapstructure:"notifyCommission"`
}

type BehaviorConfig struct {
	// FomoChangeThreshold is the 24h percentage gain above which a BUY is
	// flagged. PanicChangeThreshold is the symmetric drop for a SELL.
	FomoChangeThreshold  float64 `mapstructure:"fomoChangeThreshold"`
	PanicChangeThreshold float64 `mapstructure:"panicChangeThreshold"`
}

// DefaultAnalysisConfig mirrors the deployed rule thresholds.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Risk: RiskConfig{
			AllInCashRatio:     0.90,
			ConcentrationLimit: 60,
		},
		Costs: CostConfig{
			FeeRate:           0.005,
			SlippageTolerance: 0.001,
			NotifyCommission:  false,
		},
		Behavior: BehaviorConfig{
			FomoChangeThreshold:  0,
			PanicChangeThreshold: 0,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	defaults := DefaultAnalysisConfig()
	viper.SetDefault("service.port", "8000")
	viper.SetDefault("externalClients.feedback.url", "http://localhost:3000/feedback")
	viper.SetDefault("externalClients.feedback.timeoutSeconds", 5)
	viper.SetDefault("analysis.risk.allInCashRatio", defaults.Risk.AllInCashRatio)
	viper.SetDefault("analysis.risk.concentrationLimit", defaults.Risk.ConcentrationLimit)
	viper.SetDefault("analysis.costs.feeRate", defaults.Costs.FeeRate)
	viper.SetDefault("analysis.costs.slippageTolerance", defaults.Costs.SlippageTolerance)
	viper.SetDefault("analysis.costs.notifyCommission", defaults.Costs.NotifyCommission)
	viper.SetDefault("analysis.behavior.fomoChangeThreshold", defaults.Behavior.FomoChangeThreshold)
	viper.SetDefault("analysis.behavior.panicChangeThreshold", defaults.Behavior.PanicChangeThreshold)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	// The sink URL is the one deploy-time setting the NestJS side controls.
	if url := os.Getenv("FEEDBACK_URL"); url != "" {
		cfg.ExternalClients.Feedback.URL = url
	}
	return &cfg, nil
}
