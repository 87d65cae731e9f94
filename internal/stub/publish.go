package stub

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
)

// PublishResult lists what Publish did.
type PublishResult struct {
	// Written holds the stub names copied into the directory.
	Written []string

	// Skipped holds the stub names left alone because they already existed.
	Skipped []string
}

// Publish copies the built-in stubs into dir on dst so they can be customized
// and used as an override directory. Existing files are kept unless force is set.
func Publish(dst afero.Fs, dir string, force bool) (*PublishResult, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}

	if err := dst.MkdirAll(dir, 0o755); err != nil {
		return nil, oerrors.WrapFilesystem(err, "creating stub directory "+dir)
	}

	src := NewSource(nil)
	result := &PublishResult{}

	for _, name := range names {
		target := filepath.Join(dir, name)

		exists, err := afero.Exists(dst, target)
		if err != nil {
			return nil, oerrors.WrapFilesystem(err, "checking "+target)
		}
		if exists && !force {
			output.Debug("stub kept", "path", target)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		data, err := src.ReadBytes(name)
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(dst, target, data, 0o644); err != nil {
			return nil, oerrors.WrapFilesystem(err, "writing "+target)
		}

		output.Debug("stub published", "path", target)
		result.Written = append(result.Written, name)
	}

	return result, nil
}
