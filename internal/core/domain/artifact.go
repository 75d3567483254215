package domain

const (
	// ListingFileName is the name of the listing page written into every directory.
	ListingFileName = "index.html"

	// ManifestFileName is the name of the manifest written into every directory.
	ManifestFileName = "info.json"

	// NotesFileName is reserved for hand-written directory notes. It is never
	// listed or hashed.
	NotesFileName = "info.md"

	// DescriptorExtension is the extension of synthesized package descriptors.
	DescriptorExtension = ".pom"

	// SidecarExtension is appended to a descriptor name to form its checksum sidecar.
	SidecarExtension = ".sha1"

	// HiddenPrefix marks entries that are never listed, hashed or descended into.
	HiddenPrefix = "."
)

// GeneratedNames returns the file names the index generator owns in every directory.
func GeneratedNames() []string {
	return []string{ListingFileName, ManifestFileName, NotesFileName}
}

// ArtifactKind classifies a file written by dex.
type ArtifactKind string

const (
	// ArtifactListing is an index.html listing page.
	ArtifactListing ArtifactKind = "listing"
	// ArtifactManifest is an info.json manifest.
	ArtifactManifest ArtifactKind = "manifest"
	// ArtifactDescriptor is a .pom descriptor.
	ArtifactDescriptor ArtifactKind = "descriptor"
	// ArtifactSidecar is a .sha1 checksum sidecar.
	ArtifactSidecar ArtifactKind = "sidecar"
)

// WriteOutcome reports what an unconditional write did to the file on disk.
type WriteOutcome string

const (
	// WriteCreated means the file did not exist before.
	WriteCreated WriteOutcome = "created"
	// WriteUpdated means the file existed with different content.
	WriteUpdated WriteOutcome = "updated"
	// WriteUnchanged means the file was rewritten with identical content.
	WriteUnchanged WriteOutcome = "unchanged"
)

// EntryKind distinguishes files from directories.
type EntryKind int

const (
	// EntryFile is a regular file.
	EntryFile EntryKind = iota
	// EntryDir is a directory.
	EntryDir
)

// Entry is an immediate child of a directory.
type Entry struct {
	Name string
	Kind EntryKind
	// Symlink is set when the entry is a symbolic link. Kind describes its target.
	Symlink bool
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == EntryDir
}

// IsHidden reports whether the entry carries the hidden marker.
func (e Entry) IsHidden() bool {
	return len(e.Name) > 0 && e.Name[:1] == HiddenPrefix
}

// Digest is a hex-encoded content digest together with the number of bytes hashed.
type Digest struct {
	Hex  string
	Size int64
}
