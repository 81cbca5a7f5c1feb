// Package config owns the viper configuration engine, the default registry and validation of loaded values.
package config

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/animedex/constant"
	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/where"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

var validate = validator.New()

// Setup registers defaults, binds environment variables and reads animedex.toml if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// settings is the subset of configuration whose values are constrained.
type settings struct {
	BaseURL      string `validate:"required,url"`
	Timeout      int    `validate:"gte=0"`
	DefaultLimit int    `validate:"gte=1,lte=20"`
	WindowSize   int    `validate:"gte=1"`
	ItemSpacing  int    `validate:"gte=0"`
	MiniPageSize int    `validate:"gte=1"`
	IconsVariant string `validate:"omitempty,oneof=emoji nerd plain kaomoji squares"`
	LogsLevel    string `validate:"oneof=panic fatal error warn info debug trace"`
}

// Validate checks the effective configuration and reports every violated key.
func Validate() error {
	s := settings{
		BaseURL:      viper.GetString(key.APIBaseURL),
		Timeout:      viper.GetInt(key.APITimeout),
		DefaultLimit: viper.GetInt(key.PaginationDefaultLimit),
		WindowSize:   viper.GetInt(key.PaginationWindowSize),
		ItemSpacing:  viper.GetInt(key.TUIItemSpacing),
		MiniPageSize: viper.GetInt(key.MiniPageSize),
		IconsVariant: viper.GetString(key.IconsVariant),
		LogsLevel:    viper.GetString(key.LogsLevel),
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	names := map[string]string{
		"BaseURL":      key.APIBaseURL,
		"Timeout":      key.APITimeout,
		"DefaultLimit": key.PaginationDefaultLimit,
		"WindowSize":   key.PaginationWindowSize,
		"ItemSpacing":  key.TUIItemSpacing,
		"MiniPageSize": key.MiniPageSize,
		"IconsVariant": key.IconsVariant,
		"LogsLevel":    key.LogsLevel,
	}

	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fmt.Sprintf("%s: failed %q (value %v)", names[fe.StructField()], fe.Tag(), fe.Value())
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
