package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeWith returns a read end of a pipe pre-filled with content
func pipeWith(t *testing.T, content string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	t.Cleanup(func() { r.Close() })
	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadTemplate(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		useStdin bool
		files    []string
		args     []string
		want     string
	}{
		{
			name: "CLI args only",
			args: []string{"Tour", "[address]"},
			want: "Tour [address]",
		},
		{
			name: "nothing",
			want: "",
		},
		{
			name:     "stdin only",
			stdin:    "Listing in {city}\n\n",
			useStdin: true,
			want:     "Listing in {city}",
		},
		{
			name:     "stdin then args",
			stdin:    "first",
			useStdin: true,
			args:     []string{"second"},
			want:     "first\n\nsecond",
		},
		{
			name:     "blank stdin is skipped",
			stdin:    "  \n",
			useStdin: true,
			args:     []string{"only"},
			want:     "only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdin *os.File
			if tt.useStdin {
				stdin = pipeWith(t, tt.stdin)
			}

			got, err := ReadTemplate(stdin, tt.args, tt.files)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTemplateOrder(t *testing.T) {
	file := writeFile(t, "tpl.txt", "from file <price>\n")
	stdin := pipeWith(t, "from stdin")

	got, err := ReadTemplate(stdin, []string{"from", "args"}, []string{"", file})
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n\nfrom file <price>\n\nfrom args", got)
}

func TestReadTemplateMissingFile(t *testing.T) {
	_, err := ReadTemplate(nil, nil, []string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template file")
}
