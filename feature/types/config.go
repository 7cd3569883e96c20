package types

// Config holds configuration for the dump pipeline.
type Config struct {
	// Source selects where rows come from: download, sqlite or mysql.
	Source string `mapstructure:"source" default:"download"`
	// Database is the path of an existing sqlite snapshot, used when Source is sqlite.
	Database string `mapstructure:"database" default:""`
	// Output is the path of the produced JSON array.
	Output string `mapstructure:"output" default:"data/types.json"`
	// ComponentGroups lists the group ids whose types get a component breakdown.
	ComponentGroups []int64 `mapstructure:"component_groups" default:"30,485,547,659,883"`
	// WorkDir is the parent of the temporary download directory. Empty uses the OS default.
	WorkDir string `mapstructure:"work_dir" default:""`
	// KeepSnapshot leaves the downloaded snapshot on disk after the run.
	KeepSnapshot bool `mapstructure:"keep_snapshot" default:"false"`
}

const (
	SourceDownload = "download"
	SourceSQLite   = "sqlite"
	SourceMySQL    = "mysql"
)

// DefaultComponentGroups are the groups whose types are rarely traded and
// therefore get their build materials attached.
var DefaultComponentGroups = []int64{
	659, // Supercarriers
	547, // Carriers
	30,  // Titans
	485, // Dreadnoughts
	883, // Capital Industrial Ships
}

// groups returns the configured allow-list, falling back to the defaults.
func (c Config) groups() []int64 {
	if len(c.ComponentGroups) == 0 {
		return DefaultComponentGroups
	}
	return c.ComponentGroups
}
