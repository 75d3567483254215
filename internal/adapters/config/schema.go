package config

// Dexfile represents the structure of the dex.yaml settings file.
type Dexfile struct {
	PackageExtensions []string `yaml:"package_extensions"`
	RootExclude       []string `yaml:"root_exclude"`
	Site              SiteDTO  `yaml:"site"`
}

// SiteDTO represents the presentation settings of the listing pages.
type SiteDTO struct {
	Title      string `yaml:"title"`
	Footer     string `yaml:"footer"`
	Stylesheet string `yaml:"stylesheet"`
}
