package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when an explicitly requested settings file does not exist.
	ErrConfigNotFound = zerr.New("settings file not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidPackageExtension is returned when a package extension does not start with a dot.
	ErrInvalidPackageExtension = zerr.New("package extension must start with '.'")

	// ErrInvalidExcludePattern is returned when a root exclusion is not a valid glob pattern.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrStylesheetReadFailed is returned when a custom stylesheet cannot be read.
	ErrStylesheetReadFailed = zerr.New("failed to read stylesheet")

	// ErrRootNotDirectory is returned when the repository root is missing or not a directory.
	ErrRootNotDirectory = zerr.New("repository root is not a directory")

	// ErrFailedToGetRoot is returned when the repository root path cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of repository root")

	// ErrFailedToResolveRelativePath is returned when a path cannot be made relative to the root.
	ErrFailedToResolveRelativePath = zerr.New("failed to resolve relative path")

	// ErrDirectoryReadFailed is returned when a directory listing cannot be read.
	ErrDirectoryReadFailed = zerr.New("failed to read directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFileWriteFailed is returned when a generated artifact cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrDescriptorRenderFailed is returned when a descriptor cannot be serialized.
	ErrDescriptorRenderFailed = zerr.New("failed to render descriptor")

	// ErrManifestRenderFailed is returned when a manifest cannot be serialized.
	ErrManifestRenderFailed = zerr.New("failed to render manifest")

	// ErrManifestParseFailed is returned when an existing manifest cannot be parsed during verification.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrInvalidManifestEntry is returned when a manifest names something other than a direct child.
	ErrInvalidManifestEntry = zerr.New("invalid manifest entry")

	// ErrPageRenderFailed is returned when a listing page cannot be rendered.
	ErrPageRenderFailed = zerr.New("failed to render listing page")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")

	// ErrSynthesisFailed is returned when the descriptor pass fails.
	ErrSynthesisFailed = zerr.New("descriptor synthesis failed")

	// ErrIndexingFailed is returned when the index pass fails.
	ErrIndexingFailed = zerr.New("index generation failed")

	// ErrVerificationFailed is returned when generated artifacts no longer match the tree.
	ErrVerificationFailed = zerr.New("verification failed")
)
