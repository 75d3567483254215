package pom

import (
	"bytes"
	"encoding/xml"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/zerr"
)

// Namespace is the Maven POM 4.0.0 namespace.
const Namespace = "http://maven.apache.org/POM/4.0.0"

type project struct {
	XMLName    xml.Name `xml:"project"`
	Xmlns      string   `xml:"xmlns,attr"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
}

// RenderDescriptor serializes the descriptor for c. The output is stable for a
// given coordinate, so repeated runs produce identical bytes.
func RenderDescriptor(c domain.Coordinate) ([]byte, error) {
	body, err := xml.MarshalIndent(project{
		Xmlns:      Namespace,
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
	}, "", "  ")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorRenderFailed.Error()), "coordinate", c.String())
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body) + 1)
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// RenderSidecar returns the sidecar content for a hex digest.
func RenderSidecar(hex string) []byte {
	return []byte(hex + "\n")
}
