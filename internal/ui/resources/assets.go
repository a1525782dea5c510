// Package resources provides the site's static assets and page templates.
package resources

const (
	// StaticDirectoryPath is the path to static assets from the project root.
	StaticDirectoryPath = "internal/ui/resources/static"
	// TemplatesDirectoryPath is the path to page templates from the project root.
	TemplatesDirectoryPath = "internal/ui/resources/templates"
)

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}
