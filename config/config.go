package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8080

	DirectoryDriverPostgres = "postgres"
	DirectoryDriverMemory   = "memory"

	DefaultPBKDF2Iterations  = 1000
	DefaultSaltLength        = 16
	DefaultKeyLength         = 64
	DefaultMinUsernameLength = 2
	DefaultMinPasswordLength = 8
)

type Config struct {
	Env EnvConfig `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Directory selects the user directory backend
	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	// Auth holds the key-derivation parameters
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Registration holds the sign-up input rules
	Registration *RegistrationConfig `json:"registration" yaml:"registration"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type HTTPConfig struct {
	Port               int            `json:"port" yaml:"port"`
	MaxRequestBodySize string         `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           TimeoutsConfig `json:"timeouts" yaml:"timeouts"`
}

type TimeoutsConfig struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// DirectoryConfig defines where credential records live
type DirectoryConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Migrate applies the embedded schema migrations on start (postgres only)
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// AuthConfig defines the PBKDF2 parameters used for password digests
type AuthConfig struct {
	PBKDF2Iterations int `json:"pbkdf2Iterations" yaml:"pbkdf2Iterations"`
	SaltLength       int `json:"saltLength" yaml:"saltLength"`
	KeyLength        int `json:"keyLength" yaml:"keyLength"`
}

// RegistrationConfig defines the minimum input lengths enforced at sign-up
type RegistrationConfig struct {
	MinUsernameLength int `json:"minUsernameLength" yaml:"minUsernameLength"`
	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME maps onto the YAML key path, reusing the YAML spelling of
	// each segment: DIRECTORY_DRIVER -> directory.driver,
	// AUTH_PBKDF2ITERATIONS -> auth.pbkdf2Iterations.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Directory.Driver == DirectoryDriverPostgres {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres directory driver selected but postgres section is missing")
		}
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset section and value with its default.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Directory == nil {
		c.Directory = &DirectoryConfig{}
	}
	c.Directory.Driver = strings.ToLower(strings.TrimSpace(c.Directory.Driver))
	if c.Directory.Driver == "" {
		c.Directory.Driver = DirectoryDriverPostgres
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.PBKDF2Iterations == 0 {
		c.Auth.PBKDF2Iterations = DefaultPBKDF2Iterations
	}
	if c.Auth.SaltLength == 0 {
		c.Auth.SaltLength = DefaultSaltLength
	}
	if c.Auth.KeyLength == 0 {
		c.Auth.KeyLength = DefaultKeyLength
	}

	if c.Registration == nil {
		c.Registration = &RegistrationConfig{}
	}
	if c.Registration.MinUsernameLength == 0 {
		c.Registration.MinUsernameLength = DefaultMinUsernameLength
	}
	if c.Registration.MinPasswordLength == 0 {
		c.Registration.MinPasswordLength = DefaultMinPasswordLength
	}
}

// Validate rejects values that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := bytes.Parse(c.HTTP.MaxRequestBodySize); err != nil {
		return errors.Wrapf(err, "invalid http.maxRequestBodySize %q", c.HTTP.MaxRequestBodySize)
	}

	switch c.Directory.Driver {
	case DirectoryDriverPostgres, DirectoryDriverMemory:
	default:
		return errors.Errorf("unknown directory driver %q", c.Directory.Driver)
	}

	if c.Auth.PBKDF2Iterations < 0 || c.Auth.SaltLength < 0 || c.Auth.KeyLength < 0 {
		return errors.New("auth parameters must be positive")
	}
	if c.Registration.MinUsernameLength < 0 || c.Registration.MinPasswordLength < 0 {
		return errors.New("registration minimum lengths must be positive")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
