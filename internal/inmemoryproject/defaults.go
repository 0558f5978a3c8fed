package inmemoryproject

import "github.com/specialistvlad/framegen/internal/project"

var configurationNames = []string{"Debug", "Release"}

// defaultSettings returns the settings a freshly created configuration starts
// with. The composer later strips the signing and warning keys and layers the
// target-specific values on top.
func defaultSettings(configuration, language string, productType project.ProductType) project.BuildSettings {
	settings := project.BuildSettings{
		"CODE_SIGN_IDENTITY":                     "-",
		"CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING": "YES",
		"CLANG_WARN_COMMA":                       "YES",
		"CLANG_WARN_NON_LITERAL_NULL_CONVERSION": "YES",
		"CLANG_WARN_OBJC_LITERAL_CONVERSION":     "YES",
		"CLANG_WARN_RANGE_LOOP_ANALYSIS":         "YES",
		"CLANG_WARN_STRICT_PROTOTYPES":           "YES",
		"CLANG_ENABLE_MODULES":                   "YES",
		"COMBINE_HIDPI_IMAGES":                   "YES",
		"PRODUCT_NAME":                           "$(TARGET_NAME)",
		"SDKROOT":                                "macosx",
		"LD_RUNPATH_SEARCH_PATHS":                []string{"$(inherited)", "@executable_path/../Frameworks", "@loader_path/Frameworks"},
		"MTL_ENABLE_DEBUG_INFO":                  "NO",
	}

	switch productType {
	case project.ProductFramework, project.ProductDynamicLibrary:
		settings["DEFINES_MODULE"] = "YES"
		settings["DYLIB_COMPATIBILITY_VERSION"] = "1"
		settings["DYLIB_CURRENT_VERSION"] = "1"
		settings["DYLIB_INSTALL_NAME_BASE"] = "@rpath"
		settings["INSTALL_PATH"] = "$(LOCAL_LIBRARY_DIR)/Frameworks"
		settings["SKIP_INSTALL"] = "YES"
		settings["VERSIONING_SYSTEM"] = "apple-generic"
	case project.ProductStaticLibrary:
		settings["SKIP_INSTALL"] = "YES"
	}

	if language == "swift" {
		if configuration == "Debug" {
			settings["SWIFT_OPTIMIZATION_LEVEL"] = "-Onone"
			settings["SWIFT_ACTIVE_COMPILATION_CONDITIONS"] = "DEBUG"
		} else {
			settings["SWIFT_OPTIMIZATION_LEVEL"] = "-Owholemodule"
		}
	}

	if configuration == "Debug" {
		settings["MTL_ENABLE_DEBUG_INFO"] = "YES"
		settings["DEBUG_INFORMATION_FORMAT"] = "dwarf"
	} else {
		settings["DEBUG_INFORMATION_FORMAT"] = "dwarf-with-dsym"
	}

	return settings
}
