package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-conf/environment"
)

func TestAccepts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		active   []string
		tokens   []string
		accepted bool
	}{
		{"no tokens", nil, nil, true},
		{"active profile", []string{"dev"}, []string{"dev"}, true},
		{"inactive profile", []string{"dev"}, []string{"prod"}, false},
		{"any token matches", []string{"staging"}, []string{"prod", "staging"}, true},
		{"negation of inactive", nil, []string{"!prod"}, true},
		{"negation of active", []string{"prod"}, []string{"!prod"}, false},
		{"blank token", []string{"dev"}, []string{"  "}, false},
		{"expression and", []string{"dev"}, []string{"dev&&!prod"}, true},
		{"expression rejected", []string{"dev", "prod"}, []string{"dev&&!prod"}, false},
		{"expression or", []string{"staging"}, []string{"(dev||staging)"}, true},
		{"malformed expression", []string{"dev"}, []string{"dev&&"}, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := environment.New(
				environment.WithProfiles(tc.active...),
				environment.WithoutOSEnv(),
			)

			assert.Equal(t, tc.accepted, env.Accepts(tc.tokens))
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	env := environment.New(
		environment.WithProfiles("dev"),
		environment.WithoutOSEnv(),
	)

	accepted, err := env.Evaluate("dev && !prod")
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = env.Evaluate("prod || staging")
	require.NoError(t, err)
	assert.False(t, accepted)

	_, err = env.Evaluate("dev &&")
	require.Error(t, err)
}

func TestResolvePlaceholders(t *testing.T) {
	t.Parallel()

	env := environment.New(
		environment.WithProperty("app", "demo"),
		environment.WithProperty("env", "dev"),
		environment.WithoutOSEnv(),
	)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"no placeholder", "plain.cfg", "plain.cfg"},
		{"single", "${app}.cfg", "demo.cfg"},
		{"multiple", "${env}/${app}.cfg", "dev/demo.cfg"},
		{"default unused", "${app:fallback}.cfg", "demo.cfg"},
		{"default used", "${missing:fallback}.cfg", "fallback.cfg"},
		{"empty default", "${missing:}.cfg", ".cfg"},
		{"unterminated", "${app.cfg", "${app.cfg"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := env.ResolvePlaceholders(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolvePlaceholders_Unresolved(t *testing.T) {
	t.Parallel()

	env := environment.New(environment.WithoutOSEnv())

	_, err := env.ResolvePlaceholders("${missing}/x.cfg")
	require.ErrorIs(t, err, environment.ErrUnresolvedPlaceholder)
}

func TestResolvePlaceholders_OSEnv(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("HJARTA_CONF_TEST_HOME", "/opt/demo")

	env := environment.New()

	got, err := env.ResolvePlaceholders("${HJARTA_CONF_TEST_HOME}/app.cfg")
	require.NoError(t, err)
	assert.Equal(t, "/opt/demo/app.cfg", got)
}

func TestResolvePlaceholders_PropertyShadowsOSEnv(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("HJARTA_CONF_TEST_HOME", "/from-env")

	env := environment.New(environment.WithProperty("HJARTA_CONF_TEST_HOME", "/from-props"))

	got, err := env.ResolvePlaceholders("${HJARTA_CONF_TEST_HOME}")
	require.NoError(t, err)
	assert.Equal(t, "/from-props", got)
}

func TestActiveProfiles(t *testing.T) {
	t.Parallel()

	env := environment.New(environment.WithProfiles("dev", "staging"))

	assert.ElementsMatch(t, []string{"dev", "staging"}, env.ActiveProfiles())
}
