package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	SiteName     string       `yaml:"site_name,omitempty"`
	SourceRoot   string       `yaml:"source_root"`
	Repositories []Repository `yaml:"repositories"`
	Cleanup      []string     `yaml:"cleanup,omitempty"`
	Build        BuildConfig  `yaml:"build,omitempty"`
	Output       OutputConfig `yaml:"output,omitempty"`
}

// Repository describes one source repository contributing documentation.
type Repository struct {
	Name        string            `yaml:"name"`
	Subdir      string            `yaml:"subdir,omitempty"` // Optional subdirectory below the checkout root
	SiteSection string            `yaml:"site_section"`     // Destination section on the generated site
	Targets     []string          `yaml:"targets"`          // Ordered path markers used to derive page names
	Tags        map[string]string `yaml:"tags,omitempty"`   // Additional metadata
}

// BuildConfig controls the external collaborators invoked during a build.
type BuildConfig struct {
	RunExternalBuild bool   `yaml:"run_external_build"`          // Run the repository build tool before scanning
	BuildCommand     string `yaml:"build_command,omitempty"`     // Defaults to "mvn"
	ConverterCommand string `yaml:"converter_command,omitempty"` // Defaults to "pod2markdown"
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory  string `yaml:"directory"`
	DocsSubdir string `yaml:"docs_subdir,omitempty"` // Subdirectory holding section trees, defaults to "docs"
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists. Missing .env is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Documentation"
	}
	if c.Build.BuildCommand == "" {
		c.Build.BuildCommand = "mvn"
	}
	if c.Build.ConverterCommand == "" {
		c.Build.ConverterCommand = "pod2markdown"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
	}
	if c.Output.DocsSubdir == "" {
		c.Output.DocsSubdir = "docs"
	}
}

// Validate checks structural configuration problems that would make a
// build meaningless. Path existence is checked later, as a build
// precondition, so Validate stays filesystem-free and cheap to test.
func (c *Config) Validate() error {
	if len(c.Repositories) == 0 {
		return fmt.Errorf("configuration contains no repositories")
	}
	seen := make(map[string]struct{}, len(c.Repositories))
	for i, repo := range c.Repositories {
		if repo.Name == "" {
			return fmt.Errorf("repository %d has no name", i)
		}
		if _, dup := seen[repo.Name]; dup {
			return fmt.Errorf("duplicate repository name: %s", repo.Name)
		}
		seen[repo.Name] = struct{}{}
		if repo.SiteSection == "" {
			return fmt.Errorf("repository %s has no site_section", repo.Name)
		}
		if len(repo.Targets) == 0 {
			return fmt.Errorf("repository %s has no targets", repo.Name)
		}
	}
	return nil
}

// RepositoryMap returns repositories keyed by name for lookup during the build.
func (c *Config) RepositoryMap() map[string]Repository {
	m := make(map[string]Repository, len(c.Repositories))
	for _, repo := range c.Repositories {
		m[repo.Name] = repo
	}
	return m
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		SiteName:   "Quattor documentation",
		SourceRoot: "/var/lib/docsite/src",
		Repositories: []Repository{
			{
				Name:        "configuration-modules-core",
				SiteSection: "components",
				Targets:     []string{"/NCM/Component/", "/components/", "/pan/quattor/"},
			},
			{
				Name:        "CCM",
				Subdir:      "src",
				SiteSection: "CCM",
				Targets:     []string{"EDG/WP4/CCM/"},
			},
		},
		Cleanup: []string{"strip-html-comments", "collapse-blank-lines"},
		Build: BuildConfig{
			RunExternalBuild: false,
		},
		Output: OutputConfig{
			Directory: "./site",
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# docsite configuration\n# Repositories are mapped onto site sections via ordered path target markers.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
