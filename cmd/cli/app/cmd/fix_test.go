package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixOverrides(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		args    []string
		baseDir string
		abiDirs []string
		files   []string
		search  string
		replace *string
	}{
		{
			name: "no flags",
		},
		{
			name:    "base dir argument",
			args:    []string{"/projects/app/OpenCV/native/jni"},
			baseDir: "/projects/app/OpenCV/native/jni",
		},
		{
			name:    "repeated and comma separated lists",
			flags:   []string{"--abi", "abi-x86", "--abi", "abi-x86_64,abi-arm64-v8a", "--file", "OpenCVConfig.cmake"},
			abiDirs: []string{"abi-x86", "abi-x86_64", "abi-arm64-v8a"},
			files:   []string{"OpenCVConfig.cmake"},
		},
		{
			name:    "explicit empty replace",
			flags:   []string{"--search", "/sdk", "--replace", ""},
			search:  "/sdk",
			replace: new(string),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixFlags.abiDirs = nil
			fixFlags.files = nil
			fixFlags.search = ""
			fixFlags.replace = ""
			fixCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
			t.Cleanup(func() { fixCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false }) })

			require.NoError(t, fixCmd.Flags().Parse(tt.flags))
			overrides := fixOverrides(fixCmd, tt.args)

			assert.Equal(t, tt.baseDir, overrides.BaseDir)
			assert.Equal(t, tt.abiDirs, overrides.AbiDirs)
			assert.Equal(t, tt.files, overrides.Files)
			assert.Equal(t, tt.search, overrides.Search)
			assert.Equal(t, tt.replace, overrides.Replace)
		})
	}
}

func TestFixCommand_UnknownTargetDoesNotPrintUsage(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"fix", "--target", "missing"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		fixFlags.target = DefaultTarget
		fixCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	err := rootCmd.Execute()

	assert.ErrorContains(t, err, "target 'missing' not found")
	assert.NotContains(t, out.String(), "Usage:")
}
