// Package schema provides JSON schema validation for numdelta configuration
// and case files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/AndreyAkinshin/numdelta/schema"
)

var (
	configSchema *jsonschema.Schema
	casesSchema  *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		configData, err := schemafs.FS.ReadFile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		casesData, err := schemafs.FS.ReadFile("cases.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read cases schema: %w", err)
			return
		}

		configDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		casesDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(casesData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal cases schema: %w", err)
			return
		}

		if err := compiler.AddResource("config.schema.json", configDoc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		if err := compiler.AddResource("cases.schema.json", casesDoc); err != nil {
			compileErr = fmt.Errorf("add cases schema resource: %w", err)
			return
		}

		configSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}

		casesSchema, err = compiler.Compile("cases.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile cases schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the config schema.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// ValidateCases validates case-file data against the cases schema.
// YAML input is normalized through a JSON round-trip so that the schema
// validator sees JSON-typed values regardless of the source format.
func ValidateCases(data []byte, isYAML bool) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if isYAML {
		var decoded any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return fmt.Errorf("invalid YAML: %w", err)
		}
		normalized, err := json.Marshal(decoded)
		if err != nil {
			return fmt.Errorf("invalid case data: %w", err)
		}
		v, err = jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
		if err != nil {
			return fmt.Errorf("invalid case data: %w", err)
		}
	} else {
		var err error
		v, err = jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if err := casesSchema.Validate(v); err != nil {
		return fmt.Errorf("case validation failed: %w", err)
	}

	return nil
}
