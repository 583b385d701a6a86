package cli

import (
	"errors"
	"os"

	"github.com/footprint-tools/sealion/internal/dispatchers"
	"github.com/footprint-tools/sealion/internal/routefile"
	"github.com/footprint-tools/sealion/internal/usage"
)

// LoadRoutes reads the routes file at path and returns its commands. A
// missing file is only an error when required is set. Every definition
// is registered once on a scratch router so bad constraints are reported
// at load time.
func LoadRoutes(path string, required bool) ([]Command, error) {
	if path == "" {
		return nil, nil
	}

	defs, err := routefile.Load(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, usage.InvalidRoutes(path, err)
	}

	if err := routefile.Register(dispatchers.NewRouter(nil), defs, nil); err != nil {
		return nil, usage.InvalidRoutes(path, err)
	}

	return FromDefinitions(defs), nil
}
