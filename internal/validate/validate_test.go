package validate

import (
	"strings"
	"testing"

	"github.com/lyvoxa/releasectl/internal/messages"
	"github.com/lyvoxa/releasectl/internal/registry"
	"github.com/lyvoxa/releasectl/internal/testutil"
)

func buildReg(t *testing.T, paths ...string) *registry.Registry {
	t.Helper()
	defs := make([]registry.SpecDef, 0, len(paths))
	for _, p := range paths {
		defs = append(defs, registry.SpecDef{
			Path:  p,
			Rules: []registry.RuleDef{{Pattern: `x`, Template: `{version}`}},
		})
	}
	reg, err := registry.Compile(defs)
	if err != nil {
		t.Fatalf("compile registry: %v", err)
	}
	return reg
}

func TestRunAllChecksPass(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"Cargo.toml":        "version = \"1.6.0\"\n",
		"docker-compose.yml": "image: \"lyvoxa:matrix-1.6\"\n",
	})
	binDir := t.TempDir()
	testutil.WriteStub(t, binDir, "cargo")
	t.Setenv("PATH", binDir)

	results := Run(RealRunner{}, root, []string{"cargo", "check", "--quiet"}, buildReg(t, "Cargo.toml", "docker-compose.yml"))
	if !Passed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}
	if len(results) != 3 {
		t.Fatalf("expected build check + 2 structure checks, got %d", len(results))
	}
}

func TestRunBuildCheckFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	binDir := t.TempDir()
	testutil.WriteStubWithExit(t, binDir, "cargo", 101)
	t.Setenv("PATH", binDir)

	results := Run(RealRunner{}, root, []string{"cargo", "check"}, buildReg(t, "Cargo.toml"))
	if Passed(results) {
		t.Fatal("expected validation failure")
	}
	if results[0].CheckName != messages.CheckNameBuild || results[0].Status != StatusFail {
		t.Fatalf("expected failed build check first, got %+v", results[0])
	}
}

func TestRunBuildToolMissingIsFatal(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PATH", t.TempDir())

	results := Run(RealRunner{}, root, []string{"cargo", "check"}, buildReg(t, "Cargo.toml"))
	if Passed(results) {
		t.Fatal("expected validation failure for missing tool")
	}
	if results[0].Recommendation == "" {
		t.Fatal("expected a recommendation for the missing tool")
	}
}

func TestRunBuildCheckArgvIsForwarded(t *testing.T) {
	root := t.TempDir()
	binDir := t.TempDir()
	// Stub succeeds only when the subcommand is forwarded.
	testutil.WriteStubExpectArg(t, binDir, "cargo", "check")
	t.Setenv("PATH", binDir)

	results := Run(RealRunner{}, root, []string{"cargo", "check", "--quiet"}, buildReg(t))
	if !Passed(results) {
		t.Fatalf("expected pass, got %+v", results)
	}

	results = Run(RealRunner{}, root, []string{"cargo", "verify"}, buildReg(t))
	if Passed(results) {
		t.Fatal("expected failure when argv lacks the expected subcommand")
	}
}

func TestRunBuildCheckDisabledIsWarning(t *testing.T) {
	results := Run(RealRunner{}, t.TempDir(), nil, buildReg(t))
	if !Passed(results) {
		t.Fatalf("disabled build check must not fail validation: %+v", results)
	}
	if results[0].Status != StatusWarn {
		t.Fatalf("expected warning, got %+v", results[0])
	}
}

func TestRunStructureCheckDetectsUnbalancedQuotes(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"Cargo.toml": "version = \"1.6.0\n",
	})
	binDir := t.TempDir()
	testutil.WriteStub(t, binDir, "cargo")
	t.Setenv("PATH", binDir)

	results := Run(RealRunner{}, root, []string{"cargo", "check"}, buildReg(t, "Cargo.toml"))
	if Passed(results) {
		t.Fatal("expected structural failure")
	}
	var found bool
	for _, r := range results {
		if r.CheckName == messages.CheckNameStructure && r.Status == StatusFail {
			found = true
			if !strings.Contains(r.Message, "Cargo.toml") {
				t.Fatalf("expected file name in message, got %q", r.Message)
			}
		}
	}
	if !found {
		t.Fatalf("expected a failed structure check: %+v", results)
	}
}

func TestRunStructureCheckSkipsMissingAndUnstructuredFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"README.md": "only \"one quote\" here is fine: \"\n",
	})
	binDir := t.TempDir()
	testutil.WriteStub(t, binDir, "cargo")
	t.Setenv("PATH", binDir)

	results := Run(RealRunner{}, root, []string{"cargo", "check"}, buildReg(t, "README.md", "Cargo.toml"))
	if !Passed(results) {
		t.Fatalf("markdown and missing files must not be structure-checked: %+v", results)
	}
	if len(results) != 1 {
		t.Fatalf("expected only the build check, got %d results", len(results))
	}
}
