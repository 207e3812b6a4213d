package embedgen

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Manifest is the optional orus.toml describing how a source tree is packaged.
// Zero-valued fields fall back to the generator's defaults.
type Manifest struct {
	Name      string `toml:"name" validate:"required"`
	Version   string `toml:"version" validate:"required"`
	Namespace string `toml:"namespace"`
	Ext       string `toml:"ext"`
	Package   string `toml:"package"`
}

// HandleManifest decodes and validates manifest content.
func HandleManifest(tomlContent string) (Manifest, error) {
	var m Manifest
	_, err := toml.Decode(tomlContent, &m)
	if err != nil {
		return m, err
	}
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return m, err
	}
	return m, nil
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return HandleManifest(string(data))
}
