package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateEnvID creates a deterministic hash identifying a composition.
// Identical (runtime, packages, catalog digest) inputs always produce the
// same ID; packages are expected in sorted order, which NewSelection and the
// composer guarantee.
func GenerateEnvID(runtime Runtime, packages []Descriptor, catalogDigest string) string {
	var builder strings.Builder
	builder.WriteString(runtime.Spec())
	builder.WriteString("\n")
	for _, pkg := range packages {
		builder.WriteString(pkg.Name.String())
		builder.WriteString("@")
		builder.WriteString(pkg.Version.String())
		builder.WriteString(";")
	}
	builder.WriteString("\n")
	builder.WriteString(catalogDigest)

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
