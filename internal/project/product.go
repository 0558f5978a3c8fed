package project

import "fmt"

// ProductType is the kind of product a native target builds. Values match the
// target kinds accepted in a specification.
type ProductType string

const (
	ProductFramework       ProductType = "framework"
	ProductApplication     ProductType = "application"
	ProductUnitTestBundle  ProductType = "unit_test_bundle"
	ProductUITestBundle    ProductType = "ui_test_bundle"
	ProductStaticLibrary   ProductType = "static_library"
	ProductDynamicLibrary  ProductType = "dynamic_library"
	ProductBundle          ProductType = "bundle"
	ProductAppExtension    ProductType = "app_extension"
	ProductCommandLineTool ProductType = "command_line_tool"
)

// FrameworkExtension is the file extension of a framework product.
const FrameworkExtension = ".framework"

var productUTIs = map[ProductType]string{
	ProductFramework:       "com.apple.product-type.framework",
	ProductApplication:     "com.apple.product-type.application",
	ProductUnitTestBundle:  "com.apple.product-type.bundle.unit-test",
	ProductUITestBundle:    "com.apple.product-type.bundle.ui-testing",
	ProductStaticLibrary:   "com.apple.product-type.library.static",
	ProductDynamicLibrary:  "com.apple.product-type.library.dynamic",
	ProductBundle:          "com.apple.product-type.bundle",
	ProductAppExtension:    "com.apple.product-type.app-extension",
	ProductCommandLineTool: "com.apple.product-type.tool",
}

// ProductTypes lists every supported product type.
func ProductTypes() []ProductType {
	return []ProductType{
		ProductFramework,
		ProductApplication,
		ProductUnitTestBundle,
		ProductUITestBundle,
		ProductStaticLibrary,
		ProductDynamicLibrary,
		ProductBundle,
		ProductAppExtension,
		ProductCommandLineTool,
	}
}

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	_, ok := productUTIs[t]
	return ok
}

// UTI returns the uniform type identifier written into the project file.
func (t ProductType) UTI() string {
	return productUTIs[t]
}

// IsTest reports whether t is one of the test bundle types.
func (t ProductType) IsTest() bool {
	return t == ProductUnitTestBundle || t == ProductUITestBundle
}

// ProductPath returns the file name of the product a target called name
// produces, e.g. "Core.framework" or "libCore.a".
func (t ProductType) ProductPath(name string) string {
	switch t {
	case ProductFramework:
		return name + FrameworkExtension
	case ProductApplication:
		return name + ".app"
	case ProductUnitTestBundle, ProductUITestBundle:
		return name + ".xctest"
	case ProductStaticLibrary:
		return fmt.Sprintf("lib%s.a", name)
	case ProductDynamicLibrary:
		return fmt.Sprintf("lib%s.dylib", name)
	case ProductBundle:
		return name + ".bundle"
	case ProductAppExtension:
		return name + ".appex"
	default:
		return name
	}
}
