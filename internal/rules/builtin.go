package rules

import "replan/internal/evidence"

// builtins are the always-present rule tables, one list per language.
// Registration order within a language is meaningful: it is the final
// tie-break when two rules produce the same command at the same score.
var builtins = map[evidence.Language][]Rule{
	evidence.LangCSharp: {
		{Command: "dotnet restore", Keywords: []string{"restore", "nuget", "dependency", "dependencies"}, Score: 2, Tags: []string{"deps"}},
		{Command: "dotnet build", Keywords: []string{"build", "compile", "msbuild"}, Score: 2, Tags: []string{"build"}},
		{Command: "dotnet test", Keywords: []string{"test", "tests", "failing", "xunit", "nunit"}, Score: 3, Tags: []string{"test"}},
		{Command: "dotnet run", Keywords: []string{"run", "crash", "startup"}, Score: 1, Tags: []string{"run"}},
	},
	evidence.LangGo: {
		{Command: "go mod tidy", Keywords: []string{"mod", "module", "tidy", "dependency", "dependencies"}, Score: 2, Tags: []string{"deps"}},
		{Command: "go build ./...", Keywords: []string{"build", "compile"}, Score: 2, Tags: []string{"build"}},
		{Command: "go test ./...", Keywords: []string{"test", "tests", "failing", "panic", "race"}, Score: 3, Tags: []string{"test"}},
		{Command: "go vet ./...", Keywords: []string{"vet", "lint"}, Score: 1, Tags: []string{"lint"}},
		{Command: "go run .", Keywords: []string{"run", "crash", "startup"}, Score: 1, Tags: []string{"run"}},
	},
	evidence.LangJava: {
		{Command: "mvn test", Keywords: []string{"maven", "mvn", "test", "tests", "failing", "junit"}, Score: 3, Tags: []string{"test"}},
		{Command: "mvn package", Keywords: []string{"maven", "mvn", "build", "package", "compile"}, Score: 2, Tags: []string{"build"}},
		{Command: "gradle test", Keywords: []string{"gradle", "test", "tests", "failing"}, Score: 3, Tags: []string{"test"}},
		{Command: "gradle build", Keywords: []string{"gradle", "build", "compile"}, Score: 2, Tags: []string{"build"}},
	},
	evidence.LangNode: {
		{Command: "npm install", Keywords: []string{"npm", "install", "dependency", "dependencies", "node_modules"}, Score: 2, Tags: []string{"deps"}},
		{Command: "npm test", Keywords: []string{"test", "tests", "failing", "jest", "mocha", "vitest"}, Score: 3, Tags: []string{"test"}},
		{Command: "npm run build", Keywords: []string{"build", "compile", "webpack", "vite"}, Score: 2, Tags: []string{"build"}},
		{Command: "yarn install", Keywords: []string{"yarn"}, Score: 1, Tags: []string{"deps"}},
		{Command: "pnpm install", Keywords: []string{"pnpm"}, Score: 1, Tags: []string{"deps"}},
		{Command: "npx tsc --noEmit", Keywords: []string{"typescript", "tsc", "type", "types"}, Score: 2, Tags: []string{"typecheck"}},
	},
	evidence.LangPython: {
		{Command: "pip install -e .", Keywords: []string{"pip", "install", "dependency", "dependencies", "import", "modulenotfounderror"}, Score: 2, Tags: []string{"deps"}},
		{Command: "pytest -q", Keywords: []string{"pytest", "test", "tests", "failing", "assert"}, Score: 3, Tags: []string{"test"}},
		{Command: "python -m unittest discover", Keywords: []string{"unittest", "test", "tests"}, Score: 2, Tags: []string{"test"}},
		{Command: "tox", Keywords: []string{"tox", "matrix"}, Score: 1, Tags: []string{"test"}},
		{Command: "mypy .", Keywords: []string{"mypy", "type", "types"}, Score: 1, Tags: []string{"typecheck"}},
		{Command: "ruff check .", Keywords: []string{"ruff", "lint", "style"}, Score: 1, Tags: []string{"lint"}},
	},
	evidence.LangRust: {
		{Command: "cargo build", Keywords: []string{"build", "compile"}, Score: 2, Tags: []string{"build"}},
		{Command: "cargo test", Keywords: []string{"test", "tests", "failing", "panic"}, Score: 3, Tags: []string{"test"}},
		{Command: "cargo run", Keywords: []string{"run", "crash", "startup"}, Score: 1, Tags: []string{"run"}},
		{Command: "cargo clippy", Keywords: []string{"clippy", "lint", "warning", "warnings"}, Score: 1, Tags: []string{"lint"}},
	},
}

// Builtins returns a copy of the builtin rules for one language.
func Builtins(lang evidence.Language) []Rule {
	src := builtins[lang]
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}
