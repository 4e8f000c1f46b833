// Package schema provides JSON schema validation for shellbuild declaration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "shellbuild/schema"
)

var (
	buildSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("shellbuild.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read declaration schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal declaration schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("shellbuild.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add declaration schema resource: %w", err)
			return
		}

		buildSchema, err = compiler.Compile("shellbuild.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile declaration schema: %w", err)
		}
	})

	return compileErr
}

// ValidateBuildConfig validates JSON data against the declaration schema.
func ValidateBuildConfig(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := buildSchema.Validate(v); err != nil {
		return fmt.Errorf("declaration validation failed: %w", err)
	}

	return nil
}
