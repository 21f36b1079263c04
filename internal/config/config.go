// Package config loads lensagent settings from a TOML file and LENS_* environment
// variables. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "LENS"
	appDirName     = "lensagent"
	configName     = "config.toml"
	DefaultChain   = 37111
	DefaultModel   = "gemini-2.5-flash"
	DefaultMongoDB = "lensagent"
)

type Config struct {
	Agent        Agent        `mapstructure:"agent"`
	Account      Account      `mapstructure:"account"`
	Wallet       Wallet       `mapstructure:"wallet"`
	Lens         Lens         `mapstructure:"lens"`
	Storage      Storage      `mapstructure:"storage"`
	Poll         Poll         `mapstructure:"poll"`
	Posting      Posting      `mapstructure:"posting"`
	Interactions Interactions `mapstructure:"interactions"`
	Mentions     Limit        `mapstructure:"mentions"`
	Timeline     Limit        `mapstructure:"timeline"`
	Publish      Publish      `mapstructure:"publish"`
	DryRun       bool         `mapstructure:"dry_run"`
	Mongo        Mongo        `mapstructure:"mongo"`
	Memory       Memory       `mapstructure:"memory"`
	Gemini       Gemini       `mapstructure:"gemini"`
	Character    Character    `mapstructure:"character"`
	Knowledge    Knowledge    `mapstructure:"knowledge"`
	Secrets      Secrets      `mapstructure:"secrets"`
	Log          Log          `mapstructure:"log"`
	Metrics      Metrics      `mapstructure:"metrics"`
}

type Agent struct {
	// ID overrides the agent id derived from the character name.
	ID string `mapstructure:"id" validate:"omitempty,uuid"`
}

type Account struct {
	Address string `mapstructure:"address" validate:"required,eth_addr"`
	App     string `mapstructure:"app" validate:"required,eth_addr"`
}

type Wallet struct {
	PrivateKey    string `mapstructure:"private_key" validate:"required_without=PrivateKeyRef"`
	PrivateKeyRef string `mapstructure:"private_key_ref"`
	RPCURL        string `mapstructure:"rpc_url" validate:"required,url"`
	ChainID       int64  `mapstructure:"chain_id" validate:"gt=0"`
}

type Lens struct {
	APIURL  string        `mapstructure:"api_url" validate:"required,url"`
	Origin  string        `mapstructure:"origin" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type Storage struct {
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Lens     StorageLens   `mapstructure:"lens"`
	Pinata   StoragePinata `mapstructure:"pinata"`
	Storj    StorageStorj  `mapstructure:"storj"`
	Local    StorageLocal  `mapstructure:"local"`
}

type StorageLens struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

type StoragePinata struct {
	JWT     string `mapstructure:"jwt"`
	URL     string `mapstructure:"url" validate:"omitempty,url"`
	Gateway string `mapstructure:"gateway" validate:"omitempty,url"`
}

type StorageStorj struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Gateway  string `mapstructure:"gateway" validate:"omitempty,url"`
}

type StorageLocal struct {
	Dir string `mapstructure:"dir"`
}

type Poll struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

type Posting struct {
	Enabled     bool          `mapstructure:"enabled"`
	MinInterval time.Duration `mapstructure:"min_interval" validate:"gt=0"`
	MaxInterval time.Duration `mapstructure:"max_interval" validate:"gtefield=MinInterval"`
}

type Interactions struct {
	Enabled bool `mapstructure:"enabled"`
}

type Limit struct {
	Limit int `mapstructure:"limit" validate:"gte=0"`
}

type Publish struct {
	VisibilityAttempts int           `mapstructure:"visibility_attempts" validate:"gte=1"`
	VisibilityDelay    time.Duration `mapstructure:"visibility_delay" validate:"gt=0"`
}

type Mongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type Memory struct {
	Path string `mapstructure:"path"`
}

type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type Character struct {
	Path string `mapstructure:"path"`
}

type Knowledge struct {
	Dir string `mapstructure:"dir"`
}

type Secrets struct {
	Dir string `mapstructure:"dir"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type Metrics struct {
	Addr string `mapstructure:"addr"`
}

// legacyEnv lists variable names accepted alongside the LENS_* ones.
var legacyEnv = map[string][]string{
	"wallet.private_key":     {"EVM_PRIVATE_KEY"},
	"account.address":        {"EVM_ADDRESS"},
	"poll.interval":          {"LENS_POLL_INTERVAL"},
	"dry_run":                {"LENS_DRY_RUN"},
	"storage.provider":       {"LENS_STORAGE_PROVIDER"},
	"storage.pinata.jwt":     {"PINATA_JWT"},
	"storage.storj.username": {"STORJ_API_USERNAME"},
	"storage.storj.password": {"STORJ_API_PASSWORD"},
	"gemini.api_key":         {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

// DefaultPath is $HOME/.config/lensagent/config.toml.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", appDirName, configName)
}

func DataDir(home string) string {
	return filepath.Join(home, ".local", "share", appDirName)
}

// Load reads path (or the default location when path is empty) and the environment.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	return load(viper.New(), path, home)
}

func load(v *viper.Viper, path, home string) (Config, error) {
	setDefaults(v, home)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		envNames := append([]string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath(home)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsOrDurationHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	dataDir := DataDir(home)

	v.SetDefault("wallet.rpc_url", "https://rpc.testnet.lens.dev")
	v.SetDefault("wallet.chain_id", DefaultChain)
	v.SetDefault("lens.api_url", "https://api.testnet.lens.xyz/graphql")
	v.SetDefault("lens.origin", "https://lensagent.local")
	v.SetDefault("lens.timeout", 30*time.Second)
	v.SetDefault("storage.provider", "lens-storage")
	v.SetDefault("storage.timeout", 30*time.Second)
	v.SetDefault("storage.lens.url", "https://storage-api.testnet.lens.dev")
	v.SetDefault("storage.local.dir", filepath.Join(dataDir, "blobs"))
	v.SetDefault("poll.interval", 2*time.Minute)
	v.SetDefault("posting.enabled", true)
	v.SetDefault("posting.min_interval", time.Hour)
	v.SetDefault("posting.max_interval", 4*time.Hour)
	v.SetDefault("interactions.enabled", true)
	v.SetDefault("mentions.limit", 50)
	v.SetDefault("timeline.limit", 10)
	v.SetDefault("publish.visibility_attempts", 5)
	v.SetDefault("publish.visibility_delay", 5*time.Second)
	v.SetDefault("dry_run", false)
	v.SetDefault("mongo.database", DefaultMongoDB)
	v.SetDefault("memory.path", filepath.Join(dataDir, "memories.toml"))
	v.SetDefault("gemini.model", DefaultModel)
	v.SetDefault("secrets.dir", filepath.Join(dataDir, "secrets"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

var durationType = reflect.TypeOf(time.Duration(0))

// secondsOrDurationHook accepts Go duration strings and bare integers, which are read
// as seconds ("120" means two minutes).
func secondsOrDurationHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			value = strings.TrimSpace(value)
			if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
				return time.Duration(seconds) * time.Second, nil
			}
			return time.ParseDuration(value)
		case int:
			return time.Duration(value) * time.Second, nil
		case int64:
			return time.Duration(value) * time.Second, nil
		default:
			return data, nil
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Validate checks the settings needed to operate the account. Commands that never
// touch the network skip it.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, formatFieldError(fe))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := configKey(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s or %s_ref is required", field, field)
	case "eth_addr":
		return fmt.Sprintf("%s must be a 0x-prefixed 20-byte address", field)
	case "url":
		return fmt.Sprintf("%s must be a url", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be lower than %s", field, siblingKey(field, fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// configKey turns "Config.wallet.private_key" into "wallet.private_key".
func configKey(namespace string) string {
	return strings.TrimPrefix(namespace, "Config.")
}

// siblingKey names the struct field param next to key: ("posting.max_interval",
// "MinInterval") gives "posting.min_interval".
func siblingKey(key, param string) string {
	var b strings.Builder
	for i, r := range param {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	sibling := strings.ToLower(b.String())

	if idx := strings.LastIndex(key, "."); idx >= 0 {
		return key[:idx+1] + sibling
	}
	return sibling
}
