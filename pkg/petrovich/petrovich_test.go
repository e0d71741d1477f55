// Test Type: Unit Test
// Description: Tests for the Petrovich facade against the built-in rule table

package petrovich_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/petrovich"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/testutil"
	"github.com/arthur-debert/petrovich/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPetrovich(t *testing.T, g types.Gender) *petrovich.Petrovich {
	t.Helper()
	p, err := petrovich.New(g)
	require.NoError(t, err)
	return p
}

// declension lists the six forms in nominative..prepositional order
type declension [6]string

func assertDeclension(t *testing.T, want declension, inflect func(string, types.Case) (string, error), name string) {
	t.Helper()
	for _, c := range types.AllCases() {
		got, err := inflect(name, c)
		require.NoError(t, err)
		assert.Equal(t, want[c], got, "%s in %s", name, c)
	}
}

func TestNew(t *testing.T) {
	t.Run("empty gender is androgynous", func(t *testing.T) {
		p := newPetrovich(t, "")
		assert.Equal(t, types.Androgynous, p.Gender())
		assert.True(t, p.Rules().Source.IsBuiltin())
	})

	t.Run("invalid gender", func(t *testing.T) {
		_, err := petrovich.New(types.Gender("robot"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidGender))
	})

	t.Run("missing rules file", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"missing.yml", "missing", "missing.txt"} {
			path := filepath.Join(dir, name)
			_, err := petrovich.New(types.Male, petrovich.WithRulesPath(path))
			require.Error(t, err, name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceNotFound), name)
		}
	})

	t.Run("rules file", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		path := "/etc/petrovich/rules.json"
		require.NoError(t, afero.WriteFile(fsys, path, []byte(testutil.SuffixOnlyRulesJSON), 0644))

		p, err := petrovich.New(types.Male, petrovich.WithRulesPath(path), petrovich.WithFS(fsys))
		require.NoError(t, err)
		assert.Equal(t, path, p.Rules().Source.Path)

		got, err := p.Lastname("Петров", types.Dative)
		require.NoError(t, err)
		assert.Equal(t, "Петрову", got)
	})
}

func TestWithRules_EndToEnd(t *testing.T) {
	table := &rules.Rules{
		Lastname: rules.RuleSet{
			Suffixes: []rules.Rule{
				{Tags: []string{"*"}, Test: []string{"ов"}, Mods: []string{".", "у", "а", "ым", "е"}},
			},
		},
	}

	p, err := petrovich.New(types.Androgynous, petrovich.WithRules(table))
	require.NoError(t, err)
	assert.Same(t, table, p.Rules())

	assertDeclension(t, declension{"Петров", "Петров", "Петрову", "Петрова", "Петровым", "Петрове"}, p.Lastname, "Петров")
}

func TestLastname(t *testing.T) {
	tests := []struct {
		name   string
		gender types.Gender
		in     string
		want   declension
	}{
		{"male -ов", types.Male, "Петров",
			declension{"Петров", "Петрова", "Петрову", "Петрова", "Петровым", "Петрове"}},
		{"female -ова", types.Female, "Иванова",
			declension{"Иванова", "Ивановой", "Ивановой", "Иванову", "Ивановой", "Ивановой"}},
		{"male -ой", types.Male, "Толстой",
			declension{"Толстой", "Толстого", "Толстому", "Толстого", "Толстым", "Толстом"}},
		{"androgynous falls through to male rules", types.Androgynous, "Толстой",
			declension{"Толстой", "Толстого", "Толстому", "Толстого", "Толстым", "Толстом"}},
		{"female consonant ending is kept", types.Female, "Петров",
			declension{"Петров", "Петров", "Петров", "Петров", "Петров", "Петров"}},
		{"female -ская", types.Female, "Достоевская",
			declension{"Достоевская", "Достоевской", "Достоевской", "Достоевскую", "Достоевской", "Достоевской"}},
		{"hyphenated with first_word exception", types.Male, "Бонч-Бруевич",
			declension{"Бонч-Бруевич", "Бонч-Бруевича", "Бонч-Бруевичу", "Бонч-Бруевича", "Бонч-Бруевичем", "Бонч-Бруевиче"}},
		{"indeclinable exception", types.Male, "Гусь",
			declension{"Гусь", "Гусь", "Гусь", "Гусь", "Гусь", "Гусь"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPetrovich(t, tt.gender)
			assertDeclension(t, tt.want, p.Lastname, tt.in)
		})
	}
}

func TestLastname_FirstWordOnlyInCompounds(t *testing.T) {
	p := newPetrovich(t, types.Male)

	got, err := p.Lastname("Бонч", types.Genitive)
	require.NoError(t, err)
	assert.Equal(t, "Бонча", got)
}

func TestFirstname(t *testing.T) {
	tests := []struct {
		name   string
		gender types.Gender
		in     string
		want   declension
	}{
		{"regular male", types.Male, "Иван",
			declension{"Иван", "Ивана", "Ивану", "Ивана", "Иваном", "Иване"}},
		{"exception Пётр", types.Male, "Пётр",
			declension{"Пётр", "Петра", "Петру", "Петра", "Петром", "Петре"}},
		{"exception Лев", types.Male, "Лев",
			declension{"Лев", "Льва", "Льву", "Льва", "Львом", "Льве"}},
		{"exception Павел", types.Male, "Павел",
			declension{"Павел", "Павла", "Павлу", "Павла", "Павлом", "Павле"}},
		{"male -ей", types.Male, "Андрей",
			declension{"Андрей", "Андрея", "Андрею", "Андрея", "Андреем", "Андрее"}},
		{"male -ий", types.Male, "Дмитрий",
			declension{"Дмитрий", "Дмитрия", "Дмитрию", "Дмитрия", "Дмитрием", "Дмитрии"}},
		{"female -а", types.Female, "Анна",
			declension{"Анна", "Анны", "Анне", "Анну", "Анной", "Анне"}},
		{"female -ия", types.Female, "Мария",
			declension{"Мария", "Марии", "Марии", "Марию", "Марией", "Марии"}},
		{"female -ь", types.Female, "Любовь",
			declension{"Любовь", "Любови", "Любови", "Любовь", "Любовью", "Любови"}},
		{"male -ь", types.Male, "Игорь",
			declension{"Игорь", "Игоря", "Игорю", "Игоря", "Игорем", "Игоре"}},
		{"female exception", types.Female, "Николь",
			declension{"Николь", "Николь", "Николь", "Николь", "Николь", "Николь"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPetrovich(t, tt.gender)
			assertDeclension(t, tt.want, p.Firstname, tt.in)
		})
	}
}

func TestFirstname_UnknownNameIsIdentity(t *testing.T) {
	p := newPetrovich(t, types.Male)

	for _, name := range []string{"Smith", "John-Paul", "", "123"} {
		for _, c := range types.AllCases() {
			got, err := p.Firstname(name, c)
			require.NoError(t, err)
			assert.Equal(t, name, got, "%q in %s", name, c)
		}
	}
}

func TestMiddlename(t *testing.T) {
	p := newPetrovich(t, types.Androgynous)
	assertDeclension(t,
		declension{"Иванович", "Ивановича", "Ивановичу", "Ивановича", "Ивановичем", "Ивановиче"},
		p.Middlename, "Иванович")
	assert.Equal(t, types.Male, p.Gender())

	assertDeclension(t,
		declension{"Ивановна", "Ивановны", "Ивановне", "Ивановну", "Ивановной", "Ивановне"},
		p.Middlename, "Ивановна")
	assert.Equal(t, types.Female, p.Gender())
}

func TestMiddlename_StreamsGender(t *testing.T) {
	p := newPetrovich(t, types.Androgynous)

	before, err := p.Lastname("Иванова", types.Dative)
	require.NoError(t, err)
	assert.Equal(t, "Иванове", before)

	got, err := p.Middlename("Сергеевна", types.Dative)
	require.NoError(t, err)
	assert.Equal(t, "Сергеевне", got)
	assert.Equal(t, types.Female, p.Gender())

	after, err := p.Lastname("Иванова", types.Dative)
	require.NoError(t, err)
	assert.Equal(t, "Ивановой", after)
}

func TestMiddlename_GenderOverwrite(t *testing.T) {
	t.Run("empty name keeps declared gender", func(t *testing.T) {
		p := newPetrovich(t, types.Female)
		got, err := p.Middlename("", types.Genitive)
		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Equal(t, types.Female, p.Gender())
	})

	t.Run("undetectable name resets to androgynous", func(t *testing.T) {
		p := newPetrovich(t, types.Female)
		_, err := p.Middlename("Ив", types.Genitive)
		require.NoError(t, err)
		assert.Equal(t, types.Androgynous, p.Gender())
	})

	t.Run("detected gender overrides declaration", func(t *testing.T) {
		p := newPetrovich(t, types.Female)
		_, err := p.Middlename("Петрович", types.Genitive)
		require.NoError(t, err)
		assert.Equal(t, types.Male, p.Gender())
	})
}

func TestDetectGender(t *testing.T) {
	p := newPetrovich(t, types.Female)

	assert.Equal(t, types.Male, p.DetectGender("Иванович"))
	assert.Equal(t, types.Female, p.DetectGender("Ивановна"))
	assert.Equal(t, types.Androgynous, p.DetectGender("Ив"))
	assert.Equal(t, types.Female, p.Gender(), "DetectGender must not change state")
}

func TestSetGender(t *testing.T) {
	p := newPetrovich(t, types.Male)

	require.NoError(t, p.SetGender(types.Female))
	assert.Equal(t, types.Female, p.Gender())

	require.NoError(t, p.SetGender(""))
	assert.Equal(t, types.Androgynous, p.Gender())

	err := p.SetGender("neuter")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidGender))
	assert.Equal(t, types.Androgynous, p.Gender())
}

func TestInvalidCase(t *testing.T) {
	p := newPetrovich(t, types.Male)

	_, err := p.Lastname("Петров", types.Case(9))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidCase))
	assert.Contains(t, err.Error(), "case(9)")
}

func TestInflect_Kind(t *testing.T) {
	p := newPetrovich(t, types.Male)

	got, err := p.Inflect(types.Firstname, "Иван", types.Dative)
	require.NoError(t, err)
	assert.Equal(t, "Ивану", got)

	_, err = p.Inflect(types.NameKind("nickname"), "Ваня", types.Dative)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPetrovich_SilentWithoutLoggerSetup(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	p := newPetrovich(t, types.Androgynous)
	for _, c := range types.AllCases() {
		_, err := p.Middlename("Сергеевна", c)
		require.NoError(t, err)
		_, err = p.Lastname("Петрова", c)
		require.NoError(t, err)
	}

	assert.Empty(t, buf.String())
}
