package config

// DefaultDatabasePath is the store file used when nothing overrides it.
const DefaultDatabasePath = "contact_book.db"

// DefaultVCardPath is the export target when --vcard is given without a value.
const DefaultVCardPath = "contacts.vcf"

// Supported database/sql driver names.
const (
	DriverMattn   = "sqlite3" // github.com/mattn/go-sqlite3 (cgo)
	DriverModernc = "sqlite"  // modernc.org/sqlite (pure Go)
)

// ValidDrivers lists all supported SQLite drivers.
var ValidDrivers = []string{DriverMattn, DriverModernc}

// StoreConfig configures the SQLite contact store.
type StoreConfig struct {
	Path   string `yaml:"path" env:"CONTACTBOOK_DB"`
	Driver string `yaml:"driver" env:"CONTACTBOOK_DRIVER"`
}

// IsValidDriver reports whether name is a registered driver we support.
func IsValidDriver(name string) bool {
	for _, d := range ValidDrivers {
		if d == name {
			return true
		}
	}
	return false
}
