package registry

// defaultDefs is the built-in registry. Adding a managed file means adding an
// entry here (or a [[files]] override in releasectl.toml), not touching the
// update pipeline.
var defaultDefs = []SpecDef{
	{
		Path: "Cargo.toml",
		Rules: []RuleDef{
			{Pattern: `(?m)^version = "[^"]+"`, Template: `version = "{version}"`},
		},
	},
	{
		Path: "README.md",
		Rules: []RuleDef{
			{Pattern: `\*\*Current Version\*\*: [^(]+\(v[^)]+\)`, Template: `**Current Version**: {release_name} {release_number} (v{version})`},
			{Pattern: `stellar-1\.5`, Template: `{release_tag}`},
			{Pattern: `Stellar 1\.5`, Template: `{release_name} {release_number}`},
		},
	},
	{
		Path: "CHANGELOG.md",
		Rules: []RuleDef{
			{Pattern: `## \[1\.5\.0\]`, Template: `## [{version}]`},
			{Pattern: `v1\.5\.0`, Template: `v{version}`},
			{Pattern: `Stellar Edition`, Template: `{release_name} Edition`},
		},
	},
	{
		Path: "SECURITY.md",
		Rules: []RuleDef{
			{Pattern: `stellar-1\.5`, Template: `{release_tag}`},
			{Pattern: `Stellar 1\.5`, Template: `{release_name} {release_number}`},
		},
	},
	{
		Path: "Dockerfile",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
			{Pattern: `version="[^"]+"`, Template: `version="{release_tag}"`},
			{Pattern: `stellar-1\.5`, Template: `{release_tag}`},
		},
	},
	{
		Path: "docker-compose.yml",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
			{Pattern: `lyvoxa:stellar-1\.5`, Template: `lyvoxa:{release_tag}`},
		},
	},
	{
		Path: "Makefile",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
		},
	},
	{
		Path: "build.sh",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
			{Pattern: `Lyvoxa Build Script - [^"]+`, Template: `Lyvoxa Build Script - {release_name} {release_number}`},
		},
	},
	{
		Path: ".github/workflows/ci.yml",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
			{Pattern: `stellar-1\.5`, Template: `{release_tag}`},
		},
	},
	{
		Path: ".github/workflows/release.yml",
		Rules: []RuleDef{
			{Pattern: `# Version: [^\n]+`, Template: `# Version: {release_name} {release_number}`},
			{Pattern: `default: 'stellar-1\.5'`, Template: `default: '{release_tag}'`},
		},
	},
	{
		Path: "docs/SETUP_SSH_SIGNING.md",
		Rules: []RuleDef{
			{Pattern: `stellar-1\.5`, Template: `{release_tag}`},
		},
	},
}
