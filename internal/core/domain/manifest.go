package domain

// Manifest is the machine-readable listing of one directory.
// Files and Dirs are never nil so they serialize as empty lists.
type Manifest struct {
	Files []ManifestFile `json:"files"`
	Dirs  []ManifestDir  `json:"dirs"`
}

// ManifestFile records a listed file and the SHA-256 of its content.
type ManifestFile struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

// ManifestDir records a listed subdirectory.
type ManifestDir struct {
	Name string `json:"name"`
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		Files: []ManifestFile{},
		Dirs:  []ManifestDir{},
	}
}

// Listing is the view model of a rendered directory page.
type Listing struct {
	// Path is the directory relative to the repository root, slash separated.
	// The root itself is ".".
	Path string
	// Parent is true for every directory except the root.
	Parent bool
	Dirs   []string
	Files  []string
}
