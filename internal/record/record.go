// Package record reads and writes the canonical version record.
//
// The record file is treated as plain text: fields are extracted and replaced
// with anchored patterns so that everything else in the file, including
// comments and formatting, survives a rewrite byte for byte.
package record

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lyvoxa/releasectl/internal/fsutil"
	"github.com/lyvoxa/releasectl/internal/messages"
)

// ErrMissingRecord reports that the version record file does not exist.
var ErrMissingRecord = errors.New(messages.RecordMissingErr)

// ErrInvalidVersion reports a semantic version that is not MAJOR.MINOR.PATCH.
var ErrInvalidVersion = errors.New(messages.RecordInvalidVersionErr)

var semanticPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// fieldPatterns locate each record assignment independently; a field missing
// from the file is simply absent from the parsed record.
var fieldPatterns = map[string]*regexp.Regexp{
	"semantic":       fieldPattern("semantic"),
	"release_name":   fieldPattern("release_name"),
	"release_number": fieldPattern("release_number"),
	"release_tag":    fieldPattern("release_tag"),
}

func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^(` + key + `\s*=\s*)"([^"]*)"`)
}

// Record holds the four canonical version fields.
type Record struct {
	Semantic      string
	ReleaseName   string
	ReleaseNumber string
	ReleaseTag    string
}

// ReleaseTag derives the short release identifier from a name and number.
func ReleaseTag(name string, number string) string {
	return strings.ToLower(name) + "-" + number
}

// ValidateSemantic checks that version is a bare MAJOR.MINOR.PATCH string.
func ValidateSemantic(version string) error {
	if !semanticPattern.MatchString(version) {
		return fmt.Errorf(messages.RecordInvalidVersionFmt, ErrInvalidVersion, version)
	}
	return nil
}

// Read parses the version record at path. Fields not present in the file are
// left empty; a missing file is an error.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, fmt.Errorf(messages.RecordMissingFmt, ErrMissingRecord, path)
		}
		return Record{}, fmt.Errorf(messages.RecordReadErrFmt, path, err)
	}
	content := string(data)
	rec := Record{
		Semantic:      fieldValue(content, "semantic"),
		ReleaseName:   fieldValue(content, "release_name"),
		ReleaseNumber: fieldValue(content, "release_number"),
		ReleaseTag:    fieldValue(content, "release_tag"),
	}
	return rec, nil
}

func fieldValue(content string, key string) string {
	match := fieldPatterns[key].FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return match[2]
}

// Write replaces the record assignments in place, preserving every other byte
// of the file. Fields absent from the file are not inserted. The release tag
// is always recomputed from the release name and number, never taken from rec.
func Write(path string, rec Record) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf(messages.RecordMissingFmt, ErrMissingRecord, path)
		}
		return fmt.Errorf(messages.RecordReadErrFmt, path, err)
	}

	content := string(data)
	content = replaceField(content, "semantic", rec.Semantic)
	content = replaceField(content, "release_name", rec.ReleaseName)
	content = replaceField(content, "release_number", rec.ReleaseNumber)
	content = replaceField(content, "release_tag", ReleaseTag(rec.ReleaseName, rec.ReleaseNumber))

	if err := fsutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.RecordWriteErrFmt, path, err)
	}
	return nil
}

func replaceField(content string, key string, value string) string {
	re := fieldPatterns[key]
	return re.ReplaceAllStringFunc(content, func(match string) string {
		sub := re.FindStringSubmatch(match)
		return sub[1] + `"` + value + `"`
	})
}

// Fields exposes the record as template interpolation values. The semantic
// version is published under the "version" key used by rule templates.
func (r Record) Fields() map[string]string {
	return map[string]string{
		"version":        r.Semantic,
		"release_name":   r.ReleaseName,
		"release_number": r.ReleaseNumber,
		"release_tag":    r.ReleaseTag,
	}
}

// FieldNames lists the template field names rules may reference.
func FieldNames() []string {
	return []string{"version", "release_name", "release_number", "release_tag"}
}
