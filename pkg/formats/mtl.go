package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known material keys.
const (
	KeyAmbient    = "Ka"
	KeyDiffuse    = "Kd"
	KeySpecular   = "Ks"
	KeyShininess  = "Ns"
	KeyDiffuseMap = "map_Kd"
)

// Material maps a property name to its raw value. Values are kept as
// strings; interpretation is up to the caller.
type Material map[string]string

// LoadMaterial reads a material file. When the file cannot be opened an empty
// material is returned together with the error.
func LoadMaterial(path string) (Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return Material{}, fmt.Errorf("opening material: %w", err)
	}
	defer f.Close()

	return ParseMaterial(f)
}

// ParseMaterial reads whitespace-separated "key value" lines. Blank lines and
// # comments are skipped, later keys overwrite earlier ones. Only the first
// value token is kept, so "Kd 0.8 0.8 0.8" stores "0.8".
func ParseMaterial(r io.Reader) (Material, error) {
	m := Material{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		value := ""
		if len(fields) > 1 {
			value = fields[1]
		}
		m[fields[0]] = value
	}

	if err := scanner.Err(); err != nil {
		return m, fmt.Errorf("reading material: %w", err)
	}
	return m, nil
}

// Float returns the numeric value of key, or def if it is absent or invalid.
func (m Material) Float(key string, def float32) float32 {
	return FloatOrElse(m[key], def)
}

// Texture returns the diffuse texture path, or "" if none is set.
func (m Material) Texture() string {
	return m[KeyDiffuseMap]
}
