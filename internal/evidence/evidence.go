// Package evidence scans a repository root for per-language indicator files.
package evidence

import (
	"os"
	"path"
	"strings"
)

// Language identifies a supported technology stack.
type Language string

const (
	LangCSharp Language = "csharp"
	LangGo     Language = "go"
	LangJava   Language = "java"
	LangNode   Language = "node"
	LangPython Language = "python"
	LangRust   Language = "rust"
)

// Languages returns every supported language in alphabetical order.
func Languages() []Language {
	return []Language{LangCSharp, LangGo, LangJava, LangNode, LangPython, LangRust}
}

// Known reports whether lang is a supported language.
func Known(lang Language) bool {
	switch lang {
	case LangCSharp, LangGo, LangJava, LangNode, LangPython, LangRust:
		return true
	}
	return false
}

// Kind classifies an indicator by how strongly it ties a repository to a
// language.
type Kind string

const (
	KindLockfile Kind = "lockfile"
	KindConfig   Kind = "config"
	KindSetup    Kind = "setup"
	KindSource   Kind = "source"
)

// Weight returns the fixed scoring weight for a kind.
func (k Kind) Weight() int {
	switch k {
	case KindLockfile:
		return 4
	case KindConfig:
		return 3
	case KindSetup:
		return 2
	case KindSource:
		return 1
	}
	return 0
}

// Evidence records a single indicator match in the scanned root.
type Evidence struct {
	Language  Language `json:"language"`
	Indicator string   `json:"indicator"`
	Kind      Kind     `json:"kind"`
}

// indicator is one exact filename or glob pattern tied to a kind.
type indicator struct {
	pattern string
	kind    Kind
}

var indicators = map[Language][]indicator{
	LangCSharp: {
		{"packages.lock.json", KindLockfile},
		{"*.csproj", KindConfig},
		{"*.sln", KindConfig},
		{"Directory.Build.props", KindConfig},
		{"global.json", KindSetup},
		{"nuget.config", KindSetup},
		{"*.cs", KindSource},
	},
	LangGo: {
		{"go.sum", KindLockfile},
		{"go.mod", KindConfig},
		{"go.work", KindConfig},
		{".go-version", KindSetup},
		{"*.go", KindSource},
	},
	LangJava: {
		{"gradle.lockfile", KindLockfile},
		{"pom.xml", KindConfig},
		{"build.gradle", KindConfig},
		{"build.gradle.kts", KindConfig},
		{"settings.gradle", KindConfig},
		{"settings.gradle.kts", KindConfig},
		{"mvnw", KindSetup},
		{"gradlew", KindSetup},
		{"*.java", KindSource},
	},
	LangNode: {
		{"package-lock.json", KindLockfile},
		{"yarn.lock", KindLockfile},
		{"pnpm-lock.yaml", KindLockfile},
		{"bun.lockb", KindLockfile},
		{"package.json", KindConfig},
		{"tsconfig.json", KindConfig},
		{".nvmrc", KindSetup},
		{".npmrc", KindSetup},
		{"*.js", KindSource},
		{"*.mjs", KindSource},
		{"*.cjs", KindSource},
		{"*.ts", KindSource},
	},
	LangPython: {
		{"poetry.lock", KindLockfile},
		{"Pipfile.lock", KindLockfile},
		{"uv.lock", KindLockfile},
		{"pdm.lock", KindLockfile},
		{"pyproject.toml", KindConfig},
		{"setup.cfg", KindConfig},
		{"tox.ini", KindConfig},
		{"Pipfile", KindConfig},
		{"setup.py", KindSetup},
		{"requirements*.txt", KindSetup},
		{"*.py", KindSource},
	},
	LangRust: {
		{"Cargo.lock", KindLockfile},
		{"Cargo.toml", KindConfig},
		{"rust-toolchain", KindSetup},
		{"rust-toolchain.toml", KindSetup},
		{"*.rs", KindSource},
	},
}

// Collect scans only the immediate entries of root against the per-language
// indicator sets. A file counts at most once per (language, kind) even when
// it matches several patterns of that kind. A missing or unreadable root
// degrades to an empty mapping; Collect never fails.
func Collect(root string) map[Language][]Evidence {
	found := make(map[Language][]Evidence)

	entries, err := os.ReadDir(root)
	if err != nil {
		return found
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for lang, specs := range indicators {
			for _, spec := range specs {
				if !matches(spec.pattern, name) {
					continue
				}
				key := string(lang) + "\x00" + string(spec.kind) + "\x00" + name
				if seen[key] {
					continue
				}
				seen[key] = true
				found[lang] = append(found[lang], Evidence{
					Language:  lang,
					Indicator: name,
					Kind:      spec.kind,
				})
			}
		}
	}

	return found
}

// matches applies pattern to a directory entry name. Patterns without glob
// metacharacters compare exactly.
func matches(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
