package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-a", ":8080", "-d", "postgres://x"},
			names: []string{"-a"},
			want:  []string{"-a", ":8080"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=blog.json", "-a", ":8080"},
			names: []string{"-c", "-config"},
			want:  []string{"-config=blog.json"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "positional", "--y=2"},
			names: []string{"-a"},
			want:  []string{},
		},
		{
			name:  "flag at the end without value",
			args:  []string{"-a"},
			names: []string{"-a"},
			want:  []string{"-a"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-a", "-d", "dsn"},
			names: []string{"-a", "-d"},
			want:  []string{"-a", "-d", "dsn"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-l", "info", "-l", "debug"},
			names: []string{"-l"},
			want:  []string{"-l", "info", "-l", "debug"},
		},
		{
			name:  "empty",
			args:  []string{},
			names: []string{"-a"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.args, tt.names...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"blogapi", "-c", "/etc/blog.json"}
		assert.Equal(t, "/etc/blog.json", ConfigPath())
	})

	t.Run("long", func(t *testing.T) {
		os.Args = []string{"blogapi", "-a", ":9000", "-config", "/etc/other.json"}
		assert.Equal(t, "/etc/other.json", ConfigPath())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"blogapi", "-a", ":9000"}
		assert.Empty(t, ConfigPath())
	})
}
