package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSorter_Sort(t *testing.T) {
	t.Run("ascending symbol sort collapses aliases", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SortNamedBindings: true, SortNamedBindingsBy: SortAscending})
		got, err := s.Sort(`import {useEffect as effect, useState} from "react";`)
		req.NoError(err)
		req.Equal(`import { effect, useState } from "react";`, got)
	})

	t.Run("side effect imports trail binding imports", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{})
		got, err := s.Sort(`import "a"; import {x} from "b";`)
		req.NoError(err)
		req.Equal("import { x } from \"b\";\nimport \"a\";", got)
	})

	t.Run("lone side effect import is unchanged", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{})
		got, err := s.Sort(`import "./setup";`)
		req.NoError(err)
		req.Equal(`import "./setup";`, got)
	})

	t.Run("priority reorders buckets, remainder keeps declaration order", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{
			Priority:         []Origin{RelativePathOrigin, AliasedModuleOrigin},
			SeparateByOrigin: true,
			PathPrefixes:     []string{"common"},
		})
		input := `import { x } from "./x";
import React from "react";
import _ from "lodash";
import { h } from "common/h";`
		got, err := s.Sort(input)
		req.NoError(err)
		want := `import { x } from "./x";

import { h } from "common/h";

import React from "react";

import _ from "lodash";`
		req.Equal(want, got)
	})

	t.Run("single newline between buckets without origin separation", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{PathPrefixes: []string{"common"}})
		input := `import React from "react";
import { h } from "common/h";`
		got, err := s.Sort(input)
		req.NoError(err)
		req.Equal("import React from \"react\";\nimport { h } from \"common/h\";", got)
	})

	t.Run("ascending path sort", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SortBy: SortAscending})
		got, err := s.Sort("import b from \"b\";\nimport a from \"a\";\nimport c from \"c\";")
		req.NoError(err)
		req.Equal("import a from \"a\";\nimport b from \"b\";\nimport c from \"c\";", got)
	})

	t.Run("descending path sort", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SortBy: SortDescending})
		got, err := s.Sort("import b from \"b\";\nimport a from \"a\";\nimport c from \"c\";")
		req.NoError(err)
		req.Equal("import c from \"c\";\nimport b from \"b\";\nimport a from \"a\";", got)
	})

	t.Run("shorter statements first", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SortBy: SortShorterFirst})
		got, err := s.Sort("import { long } from \"m\";\nimport x from \"n\";")
		req.NoError(err)
		req.Equal("import x from \"n\";\nimport { long } from \"m\";", got)
	})

	t.Run("longer statements first", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SortBy: SortLongerFirst})
		got, err := s.Sort("import x from \"n\";\nimport { long } from \"m\";")
		req.NoError(err)
		req.Equal("import { long } from \"m\";\nimport x from \"n\";", got)
	})

	t.Run("blank line before multiline import when configured", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{SeparateMultiline: true})
		input := "import a from \"a\";\nimport {\n  b,\n  c\n} from \"b\";"
		got, err := s.Sort(input)
		req.NoError(err)
		req.Equal("import a from \"a\";\n\nimport { b, c } from \"b\";", got)
	})

	t.Run("no blank line for multiline import by default", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{})
		input := "import a from \"a\";\nimport {\n  b,\n  c\n} from \"b\";"
		got, err := s.Sort(input)
		req.NoError(err)
		req.Equal("import a from \"a\";\nimport { b, c } from \"b\";", got)
	})

	t.Run("text without imports", func(t *testing.T) {
		req := require.New(t)

		s := New(Config{})
		got, err := s.Sort("const x = 1;")
		req.ErrorIs(err, ErrNoImports)
		req.Empty(got)
	})
}

func TestSortNamedBindings(t *testing.T) {
	t.Run("ascending orders by compare form", func(t *testing.T) {
		req := require.New(t)

		record := &ImportRecord{NamedBindings: []BindingPair{
			{Display: "bravo as b", Compare: "b"},
			{Display: "a", Compare: "a"},
			{Display: "c", Compare: "c"},
		}}
		sortNamedBindings(record, SortAscending)
		req.Equal([]BindingPair{
			{Display: "a", Compare: "a"},
			{Display: "b", Compare: "b"},
			{Display: "c", Compare: "c"},
		}, record.NamedBindings)
	})

	t.Run("descending orders by compare form", func(t *testing.T) {
		req := require.New(t)

		record := &ImportRecord{NamedBindings: []BindingPair{
			{Display: "a", Compare: "a"},
			{Display: "c", Compare: "c"},
			{Display: "bravo as b", Compare: "b"},
		}}
		sortNamedBindings(record, SortDescending)
		req.Equal([]BindingPair{
			{Display: "c", Compare: "c"},
			{Display: "b", Compare: "b"},
			{Display: "a", Compare: "a"},
		}, record.NamedBindings)
	})

	t.Run("shorter first keeps display form", func(t *testing.T) {
		req := require.New(t)

		record := &ImportRecord{NamedBindings: []BindingPair{
			{Display: "delta as d", Compare: "d"},
			{Display: "ee", Compare: "ee"},
		}}
		sortNamedBindings(record, SortShorterFirst)
		req.Equal([]BindingPair{
			{Display: "ee", Compare: "ee"},
			{Display: "delta as d", Compare: "d"},
		}, record.NamedBindings)
	})

	t.Run("none preserves insertion order", func(t *testing.T) {
		req := require.New(t)

		record := &ImportRecord{NamedBindings: []BindingPair{
			{Display: "c", Compare: "c"},
			{Display: "a", Compare: "a"},
		}}
		sortNamedBindings(record, SortNone)
		req.Equal([]BindingPair{
			{Display: "c", Compare: "c"},
			{Display: "a", Compare: "a"},
		}, record.NamedBindings)
	})
}

func TestSorter_RoundTrip(t *testing.T) {
	req := require.New(t)
	s := New(Config{PathPrefixes: []string{"common"}})

	statements := []string{
		`import Foo, { b as bb, a } from "common/x";`,
		`import * as NS from 'lodash';`,
		`import "./side";`,
		`import { first, second as two } from "./pair"`,
	}
	for _, statement := range statements {
		first, err := s.Transform(statement)
		req.NoError(err, "Transform(%q)", statement)
		rendered := renderRecord(first)

		matches := Extract(rendered)
		req.Len(matches, 1, "rendered statement must re-extract: %q", rendered)
		second, err := s.Transform(matches[0])
		req.NoError(err, "Transform(%q)", matches[0])

		req.Equal(first.Origin, second.Origin, "origin of %q", statement)
		req.Equal(first.CleanedDefaultBinding, second.CleanedDefaultBinding, "default binding of %q", statement)
		req.ElementsMatch(compareForms(first), compareForms(second), "named bindings of %q", statement)
	}
}

func compareForms(record *ImportRecord) []string {
	forms := make([]string, 0, len(record.NamedBindings))
	for _, pair := range record.NamedBindings {
		forms = append(forms, pair.Compare)
	}
	return forms
}

func TestSorter_Idempotence(t *testing.T) {
	req := require.New(t)
	s := New(Config{
		Priority:            []Origin{RelativePathOrigin, ModuleOrigin},
		SeparateByOrigin:    true,
		SeparateMultiline:   true,
		SortBy:              SortAscending,
		SortNamedBindings:   true,
		SortNamedBindingsBy: SortAscending,
		PathPrefixes:        []string{"app"},
	})

	input := `import Re from "react";
import { z } from "zod";
import App from "./App";
import {
  other,
  helper
} from "app/utils";
import "side";`

	once, err := s.Sort(input)
	req.NoError(err)
	want := `import App from "./App";

import { z } from "zod";

import Re from "react";

import { helper, other } from "app/utils";

import "side";`
	req.Equal(want, once)

	twice, err := s.Sort(once)
	req.NoError(err)
	req.Equal(once, twice)
}
