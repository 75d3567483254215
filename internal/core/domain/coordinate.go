package domain

import (
	"path/filepath"
	"strings"
)

// MinCoordinateSegments is the number of directory segments below the root a
// package file needs before a coordinate can be derived from its path.
const MinCoordinateSegments = 3

// Coordinate identifies a package by group, artifact and version.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// CoordinateFromDir derives a coordinate from a directory path relative to the
// repository root. The last segment is the version, the one before it the
// artifact, and all leading segments joined with dots form the group.
// It reports false when the path has fewer than MinCoordinateSegments segments.
func CoordinateFromDir(relDir string) (Coordinate, bool) {
	segments := SplitPath(relDir)
	if len(segments) < MinCoordinateSegments {
		return Coordinate{}, false
	}

	n := len(segments)
	return Coordinate{
		GroupID:    strings.Join(segments[:n-2], "."),
		ArtifactID: segments[n-2],
		Version:    segments[n-1],
	}, true
}

// DescriptorName returns the file name of the descriptor for this coordinate.
func (c Coordinate) DescriptorName() string {
	return c.ArtifactID + "-" + c.Version + DescriptorExtension
}

// String renders the coordinate in the usual group:artifact:version form.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// SplitPath splits a relative path into its non-empty segments.
// The root itself ("." or "") has no segments.
func SplitPath(rel string) []string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == "" {
		return nil
	}

	parts := strings.Split(rel, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
