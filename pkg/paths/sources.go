package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// ValidateSources checks the normalized source paths before anything is edited.
// Every source must exist, and no source may live below another source that is
// a directory: moving a directory and one of its descendants in the same plan
// is not supported.
func ValidateSources(fs types.FS, sources []string) error {
	var missing []string
	dirs := make(map[string]string)

	for _, src := range sources {
		info, err := fs.Lstat(src)
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, src)
				continue
			}
			return errors.Wrapf(err, errors.ErrSourceNotFound, "cannot access %q", src)
		}
		if info.IsDir() {
			abs, err := filepath.Abs(src)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %q", src)
			}
			dirs[abs] = src
		}
	}

	if len(missing) > 0 {
		quoted := make([]string, len(missing))
		for i, m := range missing {
			quoted[i] = fmt.Sprintf("%q", m)
		}
		return errors.Newf(errors.ErrSourceNotFound, "%s not found", strings.Join(quoted, ", ")).
			WithDetail("paths", missing)
	}

	var nested []string
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %q", src)
		}
		for _, ancestor := range Ancestors(abs) {
			if dir, ok := dirs[ancestor]; ok {
				nested = append(nested, fmt.Sprintf("%q and %q cannot be moved together", src, dir))
				break
			}
		}
	}
	if len(nested) > 0 {
		return errors.New(errors.ErrNestedSources, strings.Join(nested, "; ")).
			WithDetail("conflicts", nested)
	}

	return nil
}
