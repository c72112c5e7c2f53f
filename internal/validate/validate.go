// Package validate runs post-update consistency checks: an external build
// check plus shallow structural checks on managed files. It never mutates the
// tree; acting on a failure is the orchestrator's job.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/registry"
)

// Status classifies a single check outcome.
type Status int

// Check outcomes.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one named check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// Run executes the build check and the structural checks for every managed
// file under root. It reports each check separately; any StatusFail means the
// project did not validate.
func Run(runner Runner, root string, buildCheck []string, reg *registry.Registry) []Result {
	results := []Result{runBuildCheck(runner, root, buildCheck)}
	results = append(results, runStructureChecks(root, reg)...)
	return results
}

// Passed reports whether no check failed. Warnings do not fail validation.
func Passed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return false
		}
	}
	return true
}

func runBuildCheck(runner Runner, root string, buildCheck []string) Result {
	if len(buildCheck) == 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.CheckNameBuild,
			Message:        messages.ValidateBuildDisabled,
			Recommendation: messages.ValidateBuildDisabledRec,
		}
	}

	tool := buildCheck[0]
	if _, err := runner.LookPath(tool); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.CheckNameBuild,
			Message:        fmt.Sprintf(messages.ValidateBuildMissingFmt, tool),
			Recommendation: fmt.Sprintf(messages.ValidateBuildMissingRecFmt, tool),
		}
	}

	output, err := runner.CombinedOutput(root, buildCheck)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = err.Error()
		}
		return Result{
			Status:    StatusFail,
			CheckName: messages.CheckNameBuild,
			Message:   fmt.Sprintf(messages.ValidateBuildFailedFmt, tool, detail),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.CheckNameBuild,
		Message:   fmt.Sprintf(messages.ValidateBuildPassedFmt, tool),
	}
}

// runStructureChecks performs a balanced-quote sanity check on every existing
// managed file with a structured-format extension. Not a parse, just a cheap
// tripwire for substitutions that broke quoting.
func runStructureChecks(root string, reg *registry.Registry) []Result {
	var results []Result
	for _, rel := range reg.Paths() {
		if !structuredFormat(rel) {
			continue
		}
		full := filepath.Join(root, filepath.FromSlash(rel))
		data, err := os.ReadFile(full)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.CheckNameStructure,
				Message:   fmt.Sprintf(messages.ValidateStructureReadErrFmt, rel, err),
			})
			continue
		}
		if strings.Count(string(data), `"`)%2 != 0 {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.CheckNameStructure,
				Message:        fmt.Sprintf(messages.ValidateStructureBrokenFmt, rel),
				Recommendation: messages.ValidateStructureBrokenRec,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.CheckNameStructure,
			Message:   fmt.Sprintf(messages.ValidateStructureOKFmt, rel),
		})
	}
	return results
}

func structuredFormat(path string) bool {
	switch filepath.Ext(path) {
	case ".toml", ".yml", ".yaml":
		return true
	}
	return false
}
