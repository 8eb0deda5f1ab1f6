package env_test

import (
	"reflect"
	"testing"

	"github.com/ferdiebergado/eventsapi/internal/pkg/env"
)

func TestOverrideStruct(t *testing.T) {
	const (
		wantEnv     = "testing"
		wantCons    = 10
		wantConsStr = "10"
	)

	type dbOpts struct {
		MaxOpenConn int    `env:"DB_MAX_OPEN_CONNS"`
		DSN         string `env:"DATABASE_URL"`
	}

	type corsOpts struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
	}

	type settings struct {
		Env     string `env:"ENV"`
		Migrate bool   `env:"AUTO_MIGRATE"`
		DBOpts  *dbOpts
		CORS    corsOpts
	}

	got := settings{
		Env:     "development",
		Migrate: true,
		DBOpts: &dbOpts{
			MaxOpenConn: 3,
			DSN:         "postgres://localhost/events",
		},
		CORS: corsOpts{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}

	t.Setenv("ENV", wantEnv)
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", wantConsStr)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "https://events.example.com, https://admin.example.com,")

	if err := env.OverrideStruct(&got); err != nil {
		t.Fatal(err)
	}

	want := settings{
		Env:     "testing",
		Migrate: false,
		DBOpts: &dbOpts{
			MaxOpenConn: wantCons,
			DSN:         "postgres://localhost/events",
		},
		CORS: corsOpts{
			AllowedOrigins: []string{"https://events.example.com", "https://admin.example.com"},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.OverrideStruct(&got) = %+v, want: %+v", got, want)
	}
}

func TestOverrideStruct_InvalidValue(t *testing.T) {
	type settings struct {
		Port int `env:"PORT"`
	}

	t.Setenv("PORT", "eighty")

	var s settings
	if err := env.OverrideStruct(&s); err == nil {
		t.Errorf("env.OverrideStruct(&s) = %v, want: an error", err)
	}
}

func TestOverrideStruct_NotAPointer(t *testing.T) {
	t.Parallel()

	type settings struct {
		Port int `env:"PORT"`
	}

	if err := env.OverrideStruct(settings{}); err == nil {
		t.Errorf("env.OverrideStruct(settings{}) = %v, want: an error", err)
	}
}

func TestEnv(t *testing.T) {
	const fallback = "example.com"

	tests := []struct {
		name, envVar, envVal, fallback, val string
	}{
		{"EnvVar is set", "EVENTSAPI_TEST_HOST", "localhost", fallback, "localhost"},
		{"EnvVar is not set", "EVENTSAPI_TEST_HOST", "", fallback, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envVal != "" {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	got := env.SplitList(" a ,, b,c ")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.SplitList(%q) = %q, want: %q", " a ,, b,c ", got, want)
	}
}
