package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed shaders/*.vert shaders/*.frag
var builtin embed.FS

// Builtin holds the shaders shipped with the engine, rooted at "shaders".
var Builtin fs.FS = builtin

// LoadShader reads shaders/<name> from fsys into a null-terminated string for OpenGL.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, "shaders/"+name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return nullTerminated(b), nil
}

// LoadShaderFile reads assets/shaders/<name> from disk, falling back to
// the builtin copy when the file does not exist.
func LoadShaderFile(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join("assets", "shaders", name))
	if err != nil {
		if os.IsNotExist(err) {
			return LoadShader(Builtin, name)
		}
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return nullTerminated(b), nil
}

// Ensure null termination for gl.Strs.
func nullTerminated(b []byte) string {
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b)
}
