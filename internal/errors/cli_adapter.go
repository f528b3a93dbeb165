package errors

// ExitCodeFor determines the appropriate process exit code for an error.
// The top-level driver decides on termination; the core only classifies.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	se, ok := err.(*SiteError)
	if !ok {
		return 1
	}

	switch se.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryPrecondition, CategoryTool:
		return 8 // Environment not ready
	case CategoryConvert, CategoryBuild, CategoryFileSystem:
		return 11 // Build error
	case CategoryTemplate:
		return 12 // Navigation rendering error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}
