package config

import (
	"reflect"

	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Name     string `mapstructure:"name"`
	Symbol   string `mapstructure:"symbol"`
	Decimals uint8  `mapstructure:"decimals"`

	// EIP-712 domain of signed delegations
	Version           string        `mapstructure:"version"`
	ChainID           int64         `mapstructure:"chain_id"`
	VerifyingContract types.Address `mapstructure:"verifying_contract"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// optional json file of initial balances and delegations
	GenesisFile string `mapstructure:"genesis_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:              "FinaToken",
		Symbol:            "FNA",
		Decimals:          18,
		Version:           "1",
		ChainID:           31337,
		VerifyingContract: types.ZeroAddress(),
		LogLevel:          "info",
		LogFormat:         "plain",
	}
}

// LoadConfig reads the file at path over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	def := DefaultConfig()
	v.SetDefault("name", def.Name)
	v.SetDefault("symbol", def.Symbol)
	v.SetDefault("decimals", def.Decimals)
	v.SetDefault("version", def.Version)
	v.SetDefault("chain_id", def.ChainID)
	v.SetDefault("verifying_contract", def.VerifyingContract.Hex())
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("genesis_file", def.GenesisFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(AddressDecodeHookFunc())); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Domain() *crypto.Domain {
	return &crypto.Domain{
		Name:              cfg.Name,
		Version:           cfg.Version,
		ChainID:           cfg.ChainID,
		VerifyingContract: cfg.VerifyingContract,
	}
}

// AddressDecodeHookFunc turns a hex string into types.Address.
func AddressDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(types.Address{}) {
			return data, nil
		}

		addr, xerr := types.HexToAddress(data.(string))
		if xerr != nil {
			return nil, xerr
		}
		return addr, nil
	}
}
