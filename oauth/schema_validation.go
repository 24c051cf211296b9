// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/protected-resource.schema.json
var embeddedSchemaFS embed.FS

const metadataSchemaFile = "data/protected-resource.schema.json"

// ValidateSchema validates the document's wire form against the RFC 9728
// metadata schema. It checks structure only; use Validate for the semantic
// checks (canonical resource, issuer URIs).
func (m *ProtectedResourceMetadata) ValidateSchema() error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}
	return ValidateMetadataBytes(data)
}

// ValidateMetadataBytes validates raw protected resource metadata JSON
// against the embedded RFC 9728 schema.
func ValidateMetadataBytes(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(metadataSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", metadataSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("metadata schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("metadata schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as one error, numbering
// them when there is more than one.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
