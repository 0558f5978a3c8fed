// Package platform maps platform descriptors to project setting keys and
// values. Every function here is pure.
package platform

import (
	"strings"

	"github.com/specialistvlad/framegen/internal/config"
)

type descriptor struct {
	deploymentKey string
	sdkCondition  string
	sdks          []string
}

var descriptors = map[config.PlatformKind]descriptor{
	config.PlatformMacOS: {
		deploymentKey: "MACOSX_DEPLOYMENT_TARGET",
		sdkCondition:  "macosx*",
		sdks:          []string{"macosx"},
	},
	config.PlatformIOS: {
		deploymentKey: "IPHONEOS_DEPLOYMENT_TARGET",
		sdkCondition:  "iphone*",
		sdks:          []string{"iphoneos", "iphonesimulator"},
	},
	config.PlatformWatchOS: {
		deploymentKey: "WATCHOS_DEPLOYMENT_TARGET",
		sdkCondition:  "watch*",
		sdks:          []string{"watchos", "watchsimulator"},
	},
	config.PlatformTVOS: {
		deploymentKey: "TVOS_DEPLOYMENT_TARGET",
		sdkCondition:  "appletv*",
		sdks:          []string{"appletvos", "appletvsimulator"},
	},
}

// Find returns the platform of the given kind from a target's platform list.
func Find(platforms []config.Platform, kind config.PlatformKind) (*config.Platform, bool) {
	for i := range platforms {
		if platforms[i].Kind == kind {
			return &platforms[i], true
		}
	}
	return nil, false
}

// SupportedPlatforms returns the SUPPORTED_PLATFORMS value for a platform
// list. SDK names appear in canonical platform order regardless of the order
// of the list.
func SupportedPlatforms(platforms []config.Platform) string {
	var sdks []string
	for _, kind := range config.PlatformKinds() {
		if _, ok := Find(platforms, kind); ok {
			sdks = append(sdks, descriptors[kind].sdks...)
		}
	}
	return strings.Join(sdks, " ")
}

// DeploymentTargetKey returns the deployment-target setting key of a kind.
func DeploymentTargetKey(kind config.PlatformKind) string {
	return descriptors[kind].deploymentKey
}

// SearchPathsKey returns the SDK-conditional framework search path key of a
// kind, e.g. "FRAMEWORK_SEARCH_PATHS[sdk=iphone*]".
func SearchPathsKey(kind config.PlatformKind) string {
	return "FRAMEWORK_SEARCH_PATHS[sdk=" + descriptors[kind].sdkCondition + "]"
}

// DeploymentTarget returns the deployment target value of a platform. The
// minimum version passes through unchanged.
func DeploymentTarget(p *config.Platform) string {
	return p.MinimumVersion
}

// SearchPaths returns the framework search path value of a platform. The
// paths pass through unchanged; a platform without paths yields an empty
// list, never nil.
func SearchPaths(p *config.Platform) []string {
	paths := make([]string, len(p.SearchPaths))
	copy(paths, p.SearchPaths)
	return paths
}
