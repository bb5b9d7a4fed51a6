package config

// Stowfile represents the structure of the stow.yaml configuration file.
// Every field is optional; unset fields keep their defaults.
type Stowfile struct {
	RegistryURL string     `yaml:"registry-url"`
	CacheDir    string     `yaml:"cache-dir"`
	Output      string     `yaml:"output"`
	Format      string     `yaml:"format"`
	Parallelism int        `yaml:"parallelism"`
	Layout      *LayoutDTO `yaml:"layout"`
}

// LayoutDTO represents the build directory layout section.
type LayoutDTO struct {
	CargoHome      string `yaml:"cargo-home"`
	VendorDir      string `yaml:"vendor-dir"`
	GitCheckoutDir string `yaml:"git-checkout-dir"`
	ConfigFile     string `yaml:"config-file"`
}
