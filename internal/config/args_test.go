package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		known []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-x", "localhost"},
			known: []string{"-c", "-config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "flag with equals",
			args:  []string{"-config=alt.json", "-x", "1"},
			known: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			known: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept",
			args:  []string{"-s"},
			known: []string{"-s"},
			want:  []string{"-s"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-a", "-w", "data/users"},
			known: []string{"-a", "-w"},
			want:  []string{"-a", "-w", "data/users"},
		},
		{
			name:  "test runner flags are dropped",
			args:  []string{"-test.v=true", "-test.run", "TestX", "-l", "debug"},
			known: []string{"-l"},
			want:  []string{"-l", "debug"},
		},
		{
			name:  "empty args",
			args:  []string{},
			known: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterArgs(tt.args, tt.known...))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"bin", "-l", "debug", "-c", "conf.json"}
	assert.Equal(t, "conf.json", configFileFlag())

	os.Args = []string{"bin", "-config=other.json"}
	assert.Equal(t, "other.json", configFileFlag())

	os.Args = []string{"bin", "-l", "debug"}
	assert.Equal(t, "", configFileFlag())
}
