// Command jsonschema4 compiles a JSON Schema Draft 4 document and
// validates one or more JSON instances against it, printing any
// validation messages to stdout.
//
// Usage:
//
//	jsonschema4 -schema schema.json instance1.json [instance2.json ...]
//
// Flags:
//
//	-schema string   Path to the Draft 4 schema document (required)
//	-locale string   Locale for validation messages (default: "en")
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kaptinlin/go-i18n"
	"github.com/kschema/jsonschema4"
)

var (
	schemaPath = flag.String("schema", "", "path to the Draft 4 schema document")
	locale     = flag.String("locale", "en", "locale for validation messages")
)

func main() {
	flag.Parse()
	if *schemaPath == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: jsonschema4 -schema schema.json instance1.json [instance2.json ...]")
		os.Exit(2)
	}

	logger := slog.Default()

	schemaBytes, err := os.ReadFile(*schemaPath)
	if err != nil {
		logger.Error("reading schema", "path", *schemaPath, "error", err)
		os.Exit(1)
	}

	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile(schemaBytes, *schemaPath)
	if err != nil {
		logger.Error("compiling schema", "path", *schemaPath, "error", err)
		os.Exit(1)
	}

	bundle, err := jsonschema.I18n()
	if err != nil {
		logger.Warn("loading locale catalogs, falling back to English", "error", err)
	}
	var localizer *i18n.Localizer
	if bundle != nil {
		localizer = bundle.NewLocalizer(*locale)
	}

	exitCode := 0
	for _, instancePath := range flag.Args() {
		instanceBytes, err := os.ReadFile(instancePath)
		if err != nil {
			logger.Error("reading instance", "path", instancePath, "error", err)
			exitCode = 1
			continue
		}
		instance, err := jsonschema.DecodeInstance(instanceBytes)
		if err != nil {
			logger.Error("decoding instance", "path", instancePath, "error", err)
			exitCode = 1
			continue
		}

		messages := compiled.Validate(instance).Messages()
		if len(messages) == 0 {
			fmt.Printf("%s: valid\n", instancePath)
			continue
		}
		exitCode = 1
		fmt.Printf("%s: invalid\n", instancePath)
		for _, m := range messages {
			text := m.Message
			if localizer != nil {
				text = m.Localize(localizer)
			}
			fmt.Printf("  %s\n", text)
		}
	}
	os.Exit(exitCode)
}
