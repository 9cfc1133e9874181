package domain

import (
	"fmt"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

const DefaultTargetName = "default"

// Target describes one rewrite job: which files under which ABI directories get
// Search replaced with Replace.
type Target struct {
	Name    string   `yaml:"name"`
	BaseDir string   `yaml:"baseDir" env:"BASE_DIR"`
	AbiDirs []string `yaml:"abiDirs" env:"ABI_DIRS" envSeparator:","`
	Files   []string `yaml:"files" env:"FILES" envSeparator:","`
	Search  string   `yaml:"search" env:"SEARCH"`
	Replace string   `yaml:"replace" env:"REPLACE"`
}

// Config holds the available rewrite targets
type Config struct {
	Targets []Target `yaml:"targets"`
}

// Overrides are values supplied on the command line. Empty fields are ignored.
type Overrides struct {
	BaseDir string
	AbiDirs []string
	Files   []string
	Search  string
	Replace *string
}

func CreateDefaultTarget() Target {
	return Target{
		Name:    DefaultTargetName,
		BaseDir: "OpenCV/native/jni",
		AbiDirs: []string{
			"abi-arm64-v8a",
			"abi-armeabi-v7a",
			"abi-x86",
			"abi-x86_64",
		},
		Files: []string{
			"OpenCVConfig.cmake",
			"OpenCVModules-release.cmake",
		},
		Search:  "/sdk/native/",
		Replace: "/native/",
	}
}

func CreateDefaultConfig() Config {
	return Config{
		Targets: []Target{CreateDefaultTarget()},
	}
}

func (c *Config) TargetExists(name string) bool {
	for _, target := range c.Targets {
		if target.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) GetTarget(name string) (*Target, error) {
	for _, target := range c.Targets {
		if target.Name == name {
			return &target, nil
		}
	}
	return nil, fmt.Errorf("target '%s' not found", name)
}

func (c *Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for _, target := range c.Targets {
		names = append(names, target.Name)
	}
	return names
}

// FillFrom copies every empty field of t from base. Replace is left alone since an
// empty replacement is a valid way to strip the search text.
func (t *Target) FillFrom(base Target) {
	if t.BaseDir == "" {
		t.BaseDir = base.BaseDir
	}
	if len(t.AbiDirs) == 0 {
		t.AbiDirs = append([]string(nil), base.AbiDirs...)
	}
	if len(t.Files) == 0 {
		t.Files = append([]string(nil), base.Files...)
	}
	if t.Search == "" {
		t.Search = base.Search
		t.Replace = base.Replace
	}
}

func (t *Target) ApplyOverrides(overrides Overrides) {
	if overrides.BaseDir != "" {
		t.BaseDir = overrides.BaseDir
	}
	if len(overrides.AbiDirs) > 0 {
		t.AbiDirs = overrides.AbiDirs
	}
	if len(overrides.Files) > 0 {
		t.Files = overrides.Files
	}
	if overrides.Search != "" {
		t.Search = overrides.Search
	}
	if overrides.Replace != nil {
		t.Replace = *overrides.Replace
	}
}

func (t *Target) Validate() error {
	var errs []error
	label := t.Name
	if label == "" {
		label = "<unnamed>"
	}

	if t.BaseDir == "" {
		errs = append(errs, fmt.Errorf("target '%s' has empty baseDir", label))
	}
	if t.Search == "" {
		errs = append(errs, fmt.Errorf("target '%s' has empty search text", label))
	}
	if len(t.AbiDirs) == 0 {
		errs = append(errs, fmt.Errorf("target '%s' has no abiDirs", label))
	}
	if len(t.Files) == 0 {
		errs = append(errs, fmt.Errorf("target '%s' has no files", label))
	}

	errs = append(errs, validatePathElements(label, "abi directory", t.AbiDirs)...)
	errs = append(errs, validatePathElements(label, "file", t.Files)...)

	return utilerrors.NewAggregate(errs)
}

func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets defined in configuration")
	}

	var errs []error
	seen := sets.New[string]()
	for i, target := range c.Targets {
		if target.Name == "" {
			errs = append(errs, fmt.Errorf("target at index %d has empty name", i))
			continue
		}
		if seen.Has(target.Name) {
			errs = append(errs, fmt.Errorf("target '%s' is defined more than once", target.Name))
		}
		seen.Insert(target.Name)
		if err := target.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return utilerrors.Flatten(utilerrors.NewAggregate(errs))
}

// validatePathElements checks that every entry names a single child of its parent
// directory and that no entry is listed twice.
func validatePathElements(target string, kind string, names []string) []error {
	var errs []error
	seen := sets.New[string]()
	for i, name := range names {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s at index %d in target '%s' is empty", kind, i, target))
			continue
		}
		if name == "." || name == ".." ||
			strings.ContainsAny(name, "/\\") ||
			strings.Contains(name, "\x00") {
			errs = append(errs, fmt.Errorf("%s '%s' in target '%s' must be a plain name", kind, name, target))
		}
		if seen.Has(name) {
			errs = append(errs, fmt.Errorf("%s '%s' is listed more than once in target '%s'", kind, name, target))
		}
		seen.Insert(name)
	}
	return errs
}
