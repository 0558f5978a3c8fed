package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lithammer/dedent"
)

// sampleSpec is the starter specification written by init.
var sampleSpec = dedent.Dedent(`
	project "MyFramework" {
	  language "swift" {
	    version = "5.0"
	  }
	}

	target "MyFramework" {
	  type       = "framework"
	  info_plist = "MyFramework/Info.plist"
	  bundle_id  = "com.example.MyFramework"
	  header     = "MyFramework/MyFramework.h"

	  include_files = ["MyFramework/**/*.swift"]

	  platform "ios" {
	    minimum_version = "12.0"
	  }
	  platform "macos" {
	    minimum_version = "10.14"
	  }

	  test_target          = "MyFrameworkTests"
	  enable_code_coverage = true
	}

	target "MyFrameworkTests" {
	  type         = "unit_test_bundle"
	  info_plist   = "MyFrameworkTests/Info.plist"
	  bundle_id    = "com.example.MyFrameworkTests"
	  dependencies = ["MyFramework"]

	  include_files = ["MyFrameworkTests/**/*.swift"]

	  platform "ios" {
	    minimum_version = "12.0"
	  }
	  platform "macos" {
	    minimum_version = "10.14"
	  }
	}
`)

// ErrSpecExists is returned by init when the specification file already
// exists and overwriting was not requested.
var ErrSpecExists = errors.New("specification already exists")

// initSpec writes the starter specification to the configured path.
func (a *App) initSpec(ctx context.Context) error {
	path := a.config.SpecPath

	if _, err := os.Stat(path); err == nil && !a.config.Force {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrSpecExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(sampleSpec), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Info("Starter specification written.", "path", path)
	return nil
}
