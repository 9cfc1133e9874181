package core

import (
	"fmt"
	"path/filepath"

	"abifix/internal/core/domain"
	"abifix/internal/ports"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const EnvPrefix = "ABIFIX_"

var defaultConfigFilePath = filepath.Join("~", ".abifix.yaml")

// ConfigPath is the config file chosen on the command line. Empty means the default location.
type ConfigPath string

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	ConfigPath() string
	LoadTarget(name string) (*domain.Target, error)
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	path        string
	explicit    bool
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileService ports.FileSystem,
	configPath ConfigPath,
) *FileSystemConfigRepository {
	path := string(configPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigFilePath
	}
	return &FileSystemConfigRepository{
		fileService: fileService,
		path:        path,
		explicit:    explicit,
	}
}

func (c *FileSystemConfigRepository) ConfigPath() string {
	return c.path
}

// LoadConfig reads the config file. A missing file at the default location yields the
// built-in default config; a missing file the user asked for is an error.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	fileExists, err := c.fileService.FileExists(c.path)
	if err != nil {
		return nil, err
	}

	var config domain.Config
	if fileExists {
		data, err := c.fileService.ReadFile(c.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
		if err := checkReplaceIsExplicit(data, &config); err != nil {
			return nil, fmt.Errorf("config validation failed: %v", err)
		}
	} else if c.explicit {
		return nil, fmt.Errorf("config file %s does not exist", c.path)
	}

	if len(config.Targets) == 0 {
		config = domain.CreateDefaultConfig()
	}

	inheritFromDefaultTarget(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

// LoadTarget returns the named target with ABIFIX_* environment variables applied on top.
func (c *FileSystemConfigRepository) LoadTarget(name string) (*domain.Target, error) {
	config, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	target, err := config.GetTarget(name)
	if err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return target, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(c.path, data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(c.path)
}

// inheritFromDefaultTarget fills unset fields of every target from the target named
// "default", which itself falls back to the built-in defaults.
func inheritFromDefaultTarget(config *domain.Config) {
	base := domain.CreateDefaultTarget()
	for i := range config.Targets {
		if config.Targets[i].Name == domain.DefaultTargetName {
			config.Targets[i].FillFrom(base)
			base = config.Targets[i]
			break
		}
	}

	for i := range config.Targets {
		config.Targets[i].FillFrom(base)
	}
}

type replaceKeys struct {
	Targets []struct {
		Replace *string `yaml:"replace"`
	} `yaml:"targets"`
}

// checkReplaceIsExplicit rejects targets that set search but leave out replace, which
// would otherwise inherit an empty replacement and delete every match.
func checkReplaceIsExplicit(data []byte, config *domain.Config) error {
	var keys replaceKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	var errs []error
	for i, target := range config.Targets {
		if target.Search == "" || i >= len(keys.Targets) || keys.Targets[i].Replace != nil {
			continue
		}
		errs = append(errs, fmt.Errorf("target '%s' sets search without replace, use replace: \"\" to delete the search text", target.Name))
	}
	return utilerrors.NewAggregate(errs)
}
