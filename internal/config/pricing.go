package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig carries the business defaults applied when a quotation
// request leaves a field unset. Rates themselves live in the rate catalog.
type PricingConfig struct {
	DefaultTaxPercentage      float64 `mapstructure:"defaultTaxPercentage"`
	DefaultDiscountPercentage float64 `mapstructure:"defaultDiscountPercentage"`
	DefaultServiceDays        int     `mapstructure:"defaultServiceDays"`
	MaxServiceDays            int     `mapstructure:"maxServiceDays"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		// Japanese consumption tax.
		DefaultTaxPercentage:      10,
		DefaultDiscountPercentage: 0,
		DefaultServiceDays:        1,
		MaxServiceDays:            30,
	}
}

type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/ryokin/config") // Volume-mounted config
	v.AddConfigPath("/etc/ryokin")            // System config
	v.AddConfigPath(".")                      // Current directory (dev mode)

	v.SetEnvPrefix("RYOKIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		defaults := DefaultPricingConfig()
		v.SetDefault("pricing.defaultTaxPercentage", defaults.DefaultTaxPercentage)
		v.SetDefault("pricing.defaultDiscountPercentage", defaults.DefaultDiscountPercentage)
		v.SetDefault("pricing.defaultServiceDays", defaults.DefaultServiceDays)
		v.SetDefault("pricing.maxServiceDays", defaults.MaxServiceDays)
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PricingConfig
		if err := v.UnmarshalKey("pricing", &updated); err != nil {
			log.Printf("[pricing-config] reload failed: %v", err)
			return
		}
		if err := validatePricingConfig(updated); err != nil {
			log.Printf("[pricing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pricing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPricingConfigHolder wraps a fixed config without file watching.
func NewStaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

func validatePricingConfig(cfg PricingConfig) error {
	if cfg.DefaultTaxPercentage < 0 || cfg.DefaultTaxPercentage > 100 {
		return errors.New("pricing.defaultTaxPercentage must be within [0,100]")
	}
	if cfg.DefaultDiscountPercentage < 0 || cfg.DefaultDiscountPercentage > 100 {
		return errors.New("pricing.defaultDiscountPercentage must be within [0,100]")
	}
	if cfg.DefaultServiceDays < 1 {
		return errors.New("pricing.defaultServiceDays must be at least 1")
	}
	if cfg.MaxServiceDays < cfg.DefaultServiceDays {
		return errors.New("pricing.maxServiceDays must not be below defaultServiceDays")
	}
	return nil
}
