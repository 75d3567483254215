package domain

// PassReport counts what a single pass did.
type PassReport struct {
	Directories int
	FilesHashed int
	BytesHashed int64
	Skipped     int
	Written     map[ArtifactKind]map[WriteOutcome]int
}

// NewPassReport returns an empty report.
func NewPassReport() *PassReport {
	return &PassReport{Written: make(map[ArtifactKind]map[WriteOutcome]int)}
}

// RecordWrite counts one written artifact.
func (r *PassReport) RecordWrite(kind ArtifactKind, outcome WriteOutcome) {
	byOutcome, ok := r.Written[kind]
	if !ok {
		byOutcome = make(map[WriteOutcome]int)
		r.Written[kind] = byOutcome
	}
	byOutcome[outcome]++
}

// Count returns the number of artifacts of a kind written with any outcome.
func (r *PassReport) Count(kind ArtifactKind) int {
	total := 0
	for _, n := range r.Written[kind] {
		total += n
	}
	return total
}

// Changed returns the number of artifacts that were created or updated.
func (r *PassReport) Changed() int {
	total := 0
	for _, byOutcome := range r.Written {
		total += byOutcome[WriteCreated] + byOutcome[WriteUpdated]
	}
	return total
}

// Mismatch describes a generated artifact that no longer matches the tree.
type Mismatch struct {
	// Artifact is the sidecar or manifest that recorded the digest.
	Artifact string
	// Subject is the file the digest was recorded for.
	Subject  string
	Expected string
	Actual   string
}

// VerifyReport is the outcome of a verification pass.
type VerifyReport struct {
	SidecarsChecked  int
	ManifestsChecked int
	Mismatches       []Mismatch
}

// OK reports whether no mismatch was found.
func (r *VerifyReport) OK() bool {
	return len(r.Mismatches) == 0
}
