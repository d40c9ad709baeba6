// Package branding holds compile-time product identity strings.
package branding

// AppName is the product name used in page titles and module metadata.
const AppName = "trustgate"
