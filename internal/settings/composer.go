// Package settings composes the build settings of a target. The composed
// dictionary is identical for every build configuration of the target.
package settings

import (
	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/platform"
	"github.com/specialistvlad/framegen/internal/project"
)

// StrippedKeys are removed from every configuration before target values are
// applied.
var StrippedKeys = []string{
	"CODE_SIGN_IDENTITY",
	"CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING",
	"CLANG_WARN_COMMA",
	"CLANG_WARN_NON_LITERAL_NULL_CONVERSION",
	"CLANG_WARN_OBJC_LITERAL_CONVERSION",
	"CLANG_WARN_RANGE_LOOP_ANALYSIS",
	"CLANG_WARN_STRICT_PROTOTYPES",
}

// Compose applies the target's settings to an existing settings dictionary
// in place and returns it.
func Compose(s project.BuildSettings, t *config.Target, language *config.Language) project.BuildSettings {
	for _, key := range StrippedKeys {
		delete(s, key)
	}

	s["INFOPLIST_FILE"] = t.InfoPlist
	s["PRODUCT_BUNDLE_IDENTIFIER"] = t.BundleID
	s["APPLICATION_EXTENSION_API_ONLY"] = yesNo(t.SafeForExtensions)
	s["SUPPORTED_PLATFORMS"] = platform.SupportedPlatforms(t.Platforms)

	for _, kind := range config.PlatformKinds() {
		p, ok := platform.Find(t.Platforms, kind)
		if !ok {
			continue
		}
		s[platform.DeploymentTargetKey(kind)] = platform.DeploymentTarget(p)
		s[platform.SearchPathsKey(kind)] = platform.SearchPaths(p)
	}

	if language != nil {
		s["SWIFT_VERSION"] = language.Version
	}
	return s
}

// Apply composes the target's settings into every configuration of list.
func Apply(list *project.ConfigurationList, t *config.Target, language *config.Language) {
	for _, c := range list.Configurations {
		if c.Settings == nil {
			c.Settings = project.BuildSettings{}
		}
		Compose(c.Settings, t, language)
	}
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
