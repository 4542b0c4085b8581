// Package decoder turns the raw JSON emitted by dotnet-outdated into the
// typed report model, validating the document shape along the way. A single
// structural problem anywhere fails the whole decode with a path-qualified
// error; unknown keys are ignored so newer tool versions keep parsing.
package decoder

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/taladar/dotnet-parser/domain"
)

// Decode parses a complete dotnet-outdated JSON report. It returns either a
// fully populated report or an error: a *SyntaxError when the input is not
// valid JSON, a *SchemaError when it is valid JSON of the wrong shape. No
// partial report is ever returned.
func Decode(data []byte) (*domain.Report, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &SchemaError{Path: rootPath.String(), Expected: "object", Found: "nothing"}
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, asSyntaxError(data, err)
	}

	root, ok := document.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: rootPath.String(), Expected: "object", Found: kindOf(document)}
	}

	return decodeReport(root, rootPath)
}

func decodeReport(obj map[string]any, path jsonPath) (*domain.Report, error) {
	items, err := requireArray(obj, "Projects", path)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{Projects: make([]domain.Project, 0, len(items))}
	for i, item := range items {
		project, decodeErr := decodeProject(item, path.key("Projects").index(i))
		if decodeErr != nil {
			return nil, decodeErr
		}
		report.Projects = append(report.Projects, *project)
	}

	return report, nil
}

func decodeProject(value any, path jsonPath) (*domain.Project, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: path.String(), Expected: "object", Found: kindOf(value)}
	}

	name, err := requireString(obj, "Name", path, nonEmpty)
	if err != nil {
		return nil, err
	}
	filePath, err := requireString(obj, "FilePath", path, allowEmpty)
	if err != nil {
		return nil, err
	}
	items, err := requireArray(obj, "TargetFrameworks", path)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:             name,
		FilePath:         filePath,
		TargetFrameworks: make([]domain.Framework, 0, len(items)),
	}
	for i, item := range items {
		framework, decodeErr := decodeFramework(item, path.key("TargetFrameworks").index(i))
		if decodeErr != nil {
			return nil, decodeErr
		}
		project.TargetFrameworks = append(project.TargetFrameworks, *framework)
	}

	return project, nil
}

func decodeFramework(value any, path jsonPath) (*domain.Framework, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: path.String(), Expected: "object", Found: kindOf(value)}
	}

	name, err := requireString(obj, "Name", path, nonEmpty)
	if err != nil {
		return nil, err
	}
	items, err := requireArray(obj, "Dependencies", path)
	if err != nil {
		return nil, err
	}

	framework := &domain.Framework{
		Name:         name,
		Dependencies: make([]domain.PackageUpdate, 0, len(items)),
	}
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		itemPath := path.key("Dependencies").index(i)
		pkg, decodeErr := decodePackageUpdate(item, itemPath)
		if decodeErr != nil {
			return nil, decodeErr
		}
		if _, dup := seen[pkg.Name]; dup {
			return nil, &SchemaError{
				Path:     itemPath.key("Name").String(),
				Expected: "unique package name within the framework",
				Found:    "duplicate " + pkg.Name,
			}
		}
		seen[pkg.Name] = struct{}{}
		framework.Dependencies = append(framework.Dependencies, *pkg)
	}

	return framework, nil
}

func decodePackageUpdate(value any, path jsonPath) (*domain.PackageUpdate, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: path.String(), Expected: "object", Found: kindOf(value)}
	}

	name, err := requireString(obj, "Name", path, nonEmpty)
	if err != nil {
		return nil, err
	}
	resolved, err := requireString(obj, "ResolvedVersion", path, nonEmpty)
	if err != nil {
		return nil, err
	}
	latest, err := requireString(obj, "LatestVersion", path, nonEmpty)
	if err != nil {
		return nil, err
	}

	// dotnet-outdated itself never emits CurrentVersion; when restore and
	// project file agree it equals the resolved version.
	current, err := optionalString(obj, "CurrentVersion", path, resolved)
	if err != nil {
		return nil, err
	}
	if current == "" {
		return nil, &SchemaError{
			Path:     path.key("CurrentVersion").String(),
			Expected: "non-empty string",
			Found:    "empty string",
		}
	}

	requested, err := optionalString(obj, "RequestedRange", path, "")
	if err != nil {
		return nil, err
	}
	deprecated, err := optionalBool(obj, "Deprecated", path)
	if err != nil {
		return nil, err
	}
	severity, err := decodeSeverity(obj, path, current, latest)
	if err != nil {
		return nil, err
	}

	return &domain.PackageUpdate{
		Name:            name,
		CurrentVersion:  current,
		ResolvedVersion: resolved,
		LatestVersion:   latest,
		RequestedRange:  requested,
		Deprecated:      deprecated,
		UpgradeSeverity: severity,
	}, nil
}

// decodeSeverity validates an explicit UpgradeSeverity value or derives one
// from the version pair when the key is absent.
func decodeSeverity(obj map[string]any, path jsonPath, current, latest string) (domain.Severity, error) {
	value, present := obj["UpgradeSeverity"]
	if !present {
		return domain.Classify(current, latest), nil
	}

	str, ok := value.(string)
	if !ok {
		return "", &SchemaError{
			Path:     path.key("UpgradeSeverity").String(),
			Expected: "string",
			Found:    kindOf(value),
		}
	}

	severity := domain.Severity(str)
	if !severity.IsKnown() {
		return "", &SchemaError{
			Path:     path.key("UpgradeSeverity").String(),
			Expected: "one of Major, Minor, Patch, None, Unknown",
			Found:    str,
		}
	}
	return severity, nil
}

type emptiness bool

const (
	nonEmpty   emptiness = false
	allowEmpty emptiness = true
)

func requireString(obj map[string]any, key string, parent jsonPath, empty emptiness) (string, error) {
	value, present := obj[key]
	if !present {
		return "", &SchemaError{Path: parent.key(key).String(), Expected: "string", Found: "missing"}
	}
	str, ok := value.(string)
	if !ok {
		return "", &SchemaError{Path: parent.key(key).String(), Expected: "string", Found: kindOf(value)}
	}
	if empty == nonEmpty && str == "" {
		return "", &SchemaError{Path: parent.key(key).String(), Expected: "non-empty string", Found: "empty string"}
	}
	return str, nil
}

func optionalString(obj map[string]any, key string, parent jsonPath, fallback string) (string, error) {
	value, present := obj[key]
	if !present {
		return fallback, nil
	}
	str, ok := value.(string)
	if !ok {
		return "", &SchemaError{Path: parent.key(key).String(), Expected: "string", Found: kindOf(value)}
	}
	return str, nil
}

func optionalBool(obj map[string]any, key string, parent jsonPath) (bool, error) {
	value, present := obj[key]
	if !present {
		return false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, &SchemaError{Path: parent.key(key).String(), Expected: "bool", Found: kindOf(value)}
	}
	return b, nil
}

func requireArray(obj map[string]any, key string, parent jsonPath) ([]any, error) {
	value, present := obj[key]
	if !present {
		return nil, &SchemaError{Path: parent.key(key).String(), Expected: "array", Found: "missing"}
	}
	items, ok := value.([]any)
	if !ok {
		return nil, &SchemaError{Path: parent.key(key).String(), Expected: "array", Found: kindOf(value)}
	}
	return items, nil
}

// kindOf names the JSON kind of an unmarshaled value for error messages.
func kindOf(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}

// asSyntaxError attaches offset and line information from the stdlib JSON
// errors where available.
func asSyntaxError(data []byte, err error) error {
	var offset int64

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	line := 1
	if offset > 0 && offset <= int64(len(data)) {
		line += bytes.Count(data[:offset], []byte{'\n'})
	}

	return &SyntaxError{Offset: offset, Line: line, Cause: err}
}
