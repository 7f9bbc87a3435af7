package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"harvest/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath       = "."
	defaultAPITimeout = 10 * time.Second
	defaultHTTPPort   = 8088
	defaultUploadsDir = "/uploads/users"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP configures the local gateway a UI talks to
	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configuration for the marketplace REST backend
	API *APIConfig `json:"api" yaml:"api"`

	// Socket configuration for the realtime push channel
	Socket *SocketConfig `json:"socket" yaml:"socket"`

	// Chat configuration for the chat session manager
	Chat *ChatConfig `json:"chat" yaml:"chat"`

	// Location configuration for the viewer geolocation provider
	Location *LocationConfig `json:"location" yaml:"location"`

	// Session configuration for automatic session start
	Session *SessionConfig `json:"session" yaml:"session"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the REST backend is reached
type APIConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// UploadsURL is the origin serving avatar uploads; defaults to BaseURL
	UploadsURL string `json:"uploadsUrl" yaml:"uploadsUrl"`

	// Timeout bounds every REST call; expiry surfaces as a network error
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SocketConfig defines the push channel connection parameters
type SocketConfig struct {
	URL            string        `json:"url" yaml:"url"`
	WriteWait      time.Duration `json:"writeWait" yaml:"writeWait"`
	PongWait       time.Duration `json:"pongWait" yaml:"pongWait"`
	PingPeriod     time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
	MaxMessageSize int64         `json:"maxMessageSize" yaml:"maxMessageSize"`
	SendBuffer     int           `json:"sendBuffer" yaml:"sendBuffer"`
	ReconnectMin   time.Duration `json:"reconnectMin" yaml:"reconnectMin"`
	ReconnectMax   time.Duration `json:"reconnectMax" yaml:"reconnectMax"`
}

// ChatConfig defines chat session manager behaviour
type ChatConfig struct {
	// DedupWindow is the timestamp tolerance for matching id-less pushed messages
	DedupWindow time.Duration `json:"dedupWindow" yaml:"dedupWindow"`

	// SendRatePerSecond and SendBurst configure the send debouncer
	SendRatePerSecond float64 `json:"sendRatePerSecond" yaml:"sendRatePerSecond"`
	SendBurst         int     `json:"sendBurst" yaml:"sendBurst"`

	// EventBuffer is the default channel size for event subscribers
	EventBuffer int `json:"eventBuffer" yaml:"eventBuffer"`
}

// LocationConfig defines the viewer geolocation provider
type LocationConfig struct {
	// Provider type: "static" for a fixed coordinate or "none" when unavailable
	Provider  string  `json:"provider" yaml:"provider"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// SessionConfig allows starting a session at boot from a stored token
type SessionConfig struct {
	Token string `json:"token" yaml:"token"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: API_BASEURL -> api.baseUrl, SOCKET_PINGPERIOD -> socket.pingPeriod
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Env.Env == "" {
		c.Env.Env = constants.EnvDevelop
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if c.API == nil || strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.UploadsURL == "" {
		c.API.UploadsURL = c.API.BaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}

	if c.Socket == nil {
		c.Socket = &SocketConfig{}
	}
	if c.Chat == nil {
		c.Chat = &ChatConfig{}
	}
	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Session == nil {
		c.Session = &SessionConfig{}
	}

	return nil
}

// AvatarBase returns the uploads prefix used to resolve relative avatar references
func (c *APIConfig) AvatarBase() string {
	return strings.TrimRight(c.UploadsURL, "/") + defaultUploadsDir
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
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
