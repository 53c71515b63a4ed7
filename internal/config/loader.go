package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var documentSchema []byte

// Format versions the loader understands.
const formatConstraint = ">= 1.0.0, < 2.0.0"

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// Load loads and parses a diagram document from a YAML file.
func Load(path string) (*Document, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open document directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return LoadFromReader(file)
}

// LoadFromReader loads a diagram document from an io.Reader.
func LoadFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if err := validateDocumentSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document YAML: %w", err)
	}

	if err := checkFormatVersion(doc.Graphol); err != nil {
		return nil, err
	}

	return &doc, nil
}

// validateDocumentSchema checks the raw document against the embedded
// JSON Schema before it is decoded into typed structs, so shape errors
// surface with instance locations instead of decoder messages.
func validateDocumentSchema(data []byte) error {
	schema, err := documentSchemaCompiled()
	if err != nil {
		return err
	}

	var instance any
	if err := yaml.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("document validation failed: %w", err)
	}
	return nil
}

func documentSchemaCompiled() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("schema.json", bytes.NewReader(documentSchema)); err != nil {
			compileSchemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = compiler.Compile("schema.json")
		if compileSchemaErr != nil {
			compileSchemaErr = fmt.Errorf("failed to compile document schema: %w", compileSchemaErr)
		}
	})
	return compiledSchema, compileSchemaErr
}

// formatSchemaValidationError flattens a JSON Schema validation error tree
// into one readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}
	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("document validation failed")
	}
	return fmt.Errorf("document validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}

// checkFormatVersion gates the document format version against the
// supported range.
func checkFormatVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid format version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(formatConstraint)
	if err != nil {
		return fmt.Errorf("invalid format constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported format version %s (supported: %s)", version, formatConstraint)
	}
	return nil
}
