// Test Type: Unit Test
// Description: Tests for the rule table model, loader and validation

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/testutil"
	"github.com/arthur-debert/petrovich/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
lastname:
  suffixes:
    - test: [ов]
      mods: [".", "у", "а", "ым", "е"]
      tags: ["*"]
firstname:
  exceptions:
    - gender: male
      test: [лев]
      mods: ["--ьва", "--ьву", "--ьва", "--ьвом", "--ьве"]
      tags: ["*"]
  suffixes: []
middlename:
  suffixes: []
`

func TestDefault(t *testing.T) {
	table, err := rules.Default()
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.True(t, table.Source.IsBuiltin())
	assert.Equal(t, rules.FormatYAML, table.Source.Format)
	assert.Contains(t, table.Source.Checksum, "sha256:")

	for _, g := range table.Groups() {
		assert.NotZero(t, g.Set.Len(), "group %s should not be empty", g.Kind)
	}
	require.NoError(t, table.Validate())

	again, err := rules.Default()
	require.NoError(t, err)
	assert.Same(t, table, again, "built-in table is parsed once")
}

func TestLoad(t *testing.T) {
	t.Run("empty_path_uses_builtin", func(t *testing.T) {
		table, err := rules.Load("")
		require.NoError(t, err)
		assert.Same(t, rules.MustDefault(), table)
	})

	t.Run("yaml_file", func(t *testing.T) {
		path := testutil.TempFile(t, "rules.yml", sampleYAML)

		table, err := rules.Load(path)
		require.NoError(t, err)

		assert.Equal(t, path, table.Source.Path)
		assert.False(t, table.Source.IsBuiltin())
		require.Len(t, table.Lastname.Suffixes, 1)
		assert.Equal(t, []string{"ов"}, table.Lastname.Suffixes[0].Test)
		assert.Equal(t, "у", table.Lastname.Suffixes[0].Mods[1])
		require.Len(t, table.Firstname.Exceptions, 1)
		assert.Equal(t, "male", table.Firstname.Exceptions[0].Gender)
	})

	t.Run("missing_file", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"nope.yml", "nope", "nope.ini"} {
			path := filepath.Join(dir, name)

			_, err := rules.Load(path)
			require.Error(t, err, name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceNotFound), name)
			assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
		}
	})

	t.Run("unknown_extension", func(t *testing.T) {
		path := testutil.TempFile(t, "rules.ini", "x=1")

		_, err := rules.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceParse))
	})

	t.Run("malformed_document", func(t *testing.T) {
		path := testutil.TempFile(t, "rules.yml", testutil.BrokenYAML)

		_, err := rules.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceParse))
	})

	t.Run("short_mods_rejected", func(t *testing.T) {
		path := testutil.TempFile(t, "rules.json", `{
  "lastname": {"suffixes": [{"test": ["ов"], "mods": [".", "у"], "tags": ["*"]}]},
  "firstname": {"suffixes": []},
  "middlename": {"suffixes": []}
}`)

		_, err := rules.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleDataInvalid))

		details := errors.GetErrorDetails(err)
		assert.Equal(t, "lastname", details["group"])
		assert.Equal(t, "suffixes", details["list"])
		assert.Equal(t, 0, details["index"])
		assert.Equal(t, path, details["path"])
	})
}

func TestLoadFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/rules/custom.yml", []byte(sampleYAML), 0644))

	table, err := rules.LoadFS(fsys, "/rules/custom.yml")
	require.NoError(t, err)
	assert.Equal(t, "/rules/custom.yml", table.Source.Path)
	assert.Equal(t, 1, table.Lastname.Len())

	_, err = rules.LoadFS(fsys, "/rules/other.yml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceNotFound))
}

func TestMarshal_TOMLRoundTrip(t *testing.T) {
	data, err := rules.Marshal(rules.MustDefault(), rules.FormatTOML)
	require.NoError(t, err)

	parsed, err := rules.Parse(data, rules.FormatTOML)
	require.NoError(t, err)

	orig := rules.MustDefault()
	assert.Equal(t, orig.Lastname, parsed.Lastname)
	assert.Equal(t, orig.Firstname, parsed.Firstname)
	assert.Equal(t, orig.Middlename, parsed.Middlename)
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]rules.Format{
		"yml":   rules.FormatYAML,
		".yaml": rules.FormatYAML,
		"TOML":  rules.FormatTOML,
		"json":  rules.FormatJSON,
	} {
		got, err := rules.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := rules.ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRule_GenderRestriction(t *testing.T) {
	tests := []struct {
		name       string
		gender     string
		want       types.Gender
		restricted bool
	}{
		{"absent", "", "", false},
		{"male", "male", types.Male, true},
		{"female", "female", types.Female, true},
		{"androgynous", "androgynous", types.Androgynous, true},
		{"unparsable", "neuter", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := rules.Rule{Gender: tt.gender}.GenderRestriction()
			assert.Equal(t, tt.restricted, ok)
			assert.Equal(t, tt.want, g)
		})
	}
}

func TestRules_Set(t *testing.T) {
	table := rules.MustDefault()

	set, err := table.Set(types.Middlename)
	require.NoError(t, err)
	assert.Equal(t, table.Middlename, set)

	_, err = table.Set(types.NameKind("nickname"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
