package core

import (
	"errors"
	"testing"

	"abifix/internal/core/domain"
	"abifix/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemConfigRepository_LoadConfig_DefaultPathMissingReturnsDefaults(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "")

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultConfig(), *config)
	assert.Equal(t, defaultConfigFilePath, sut.ConfigPath())
}

func TestFileSystemConfigRepository_LoadConfig_ExplicitPathMissingIsAnError(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	config, err := sut.LoadConfig()

	assert.Nil(t, config)
	assert.ErrorContains(t, err, "/work/abifix.yaml does not exist")
}

func TestFileSystemConfigRepository_LoadConfig_ParsesTargetsAndInheritsDefaults(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	fs.Seed(t, "/work/abifix.yaml", `
targets:
  - name: default
    baseDir: /projects/app/OpenCV/native/jni
  - name: tablet
    baseDir: /projects/tablet/OpenCV/native/jni
    abiDirs:
      - abi-arm64-v8a
  - name: strip
    search: /sdk
    replace: ""
`)
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	require.Len(t, config.Targets, 3)

	defaults := domain.CreateDefaultTarget()
	assert.Equal(t, "/projects/app/OpenCV/native/jni", config.Targets[0].BaseDir)
	assert.Equal(t, defaults.AbiDirs, config.Targets[0].AbiDirs)
	assert.Equal(t, defaults.Files, config.Targets[0].Files)

	assert.Equal(t, []string{"abi-arm64-v8a"}, config.Targets[1].AbiDirs)
	assert.Equal(t, defaults.Files, config.Targets[1].Files)
	assert.Equal(t, "/sdk/native/", config.Targets[1].Search)
	assert.Equal(t, "/native/", config.Targets[1].Replace)

	assert.Equal(t, "/projects/app/OpenCV/native/jni", config.Targets[2].BaseDir)
	assert.Equal(t, "/sdk", config.Targets[2].Search)
	assert.Equal(t, "", config.Targets[2].Replace)
}

func TestFileSystemConfigRepository_LoadConfig_EmptyFileReturnsDefaults(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	fs.Seed(t, "/work/abifix.yaml", "")
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultConfig(), *config)
}

func TestFileSystemConfigRepository_LoadConfig_InvalidYaml(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	fs.Seed(t, "/work/abifix.yaml", "targets: [")
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	_, err := sut.LoadConfig()

	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestFileSystemConfigRepository_LoadConfig_ValidationFailure(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	fs.Seed(t, "/work/abifix.yaml", `
targets:
  - name: broken
    abiDirs:
      - ../escape
`)
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	_, err := sut.LoadConfig()

	assert.ErrorContains(t, err, "config validation failed")
	assert.ErrorContains(t, err, "must be a plain name")
}

func TestFileSystemConfigRepository_LoadConfig_SearchWithoutReplaceIsRejected(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	fs.Seed(t, "/work/abifix.yaml", `
targets:
  - name: default
  - name: strip
    search: /sdk
`)
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	config, err := sut.LoadConfig()

	assert.Nil(t, config)
	assert.ErrorContains(t, err, "target 'strip' sets search without replace")
}

func TestFileSystemConfigRepository_LoadConfig_IsCached(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", defaultConfigFilePath).Return(false, nil).Once()
	sut := ProvideFileSystemConfigRepository(fileSystem, "")

	first, err := sut.LoadConfig()
	require.NoError(t, err)
	second, err := sut.LoadConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	fileSystem.AssertExpectations(t)
}

func TestFileSystemConfigRepository_LoadConfig_FileExistsError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	expectedErr := errors.New("stat failed")
	fileSystem.On("FileExists", defaultConfigFilePath).Return(false, expectedErr)
	sut := ProvideFileSystemConfigRepository(fileSystem, "")

	_, err := sut.LoadConfig()

	assert.Equal(t, expectedErr, err)
}

func TestFileSystemConfigRepository_LoadTarget_AppliesEnvironment(t *testing.T) {
	t.Setenv("ABIFIX_BASE_DIR", "/env/jni")
	t.Setenv("ABIFIX_ABI_DIRS", "abi-x86,abi-x86_64")
	t.Setenv("ABIFIX_FILES", "OpenCVConfig.cmake")
	t.Setenv("ABIFIX_SEARCH", "/old/")
	t.Setenv("ABIFIX_REPLACE", "/new/")
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "")

	target, err := sut.LoadTarget(domain.DefaultTargetName)

	require.NoError(t, err)
	assert.Equal(t, "/env/jni", target.BaseDir)
	assert.Equal(t, []string{"abi-x86", "abi-x86_64"}, target.AbiDirs)
	assert.Equal(t, []string{"OpenCVConfig.cmake"}, target.Files)
	assert.Equal(t, "/old/", target.Search)
	assert.Equal(t, "/new/", target.Replace)

	config, err := sut.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultTarget(), config.Targets[0], "environment must not leak into the cached config")
}

func TestFileSystemConfigRepository_LoadTarget_WithoutEnvironment(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "")

	target, err := sut.LoadTarget(domain.DefaultTargetName)

	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultTarget(), *target)
}

func TestFileSystemConfigRepository_LoadTarget_UnknownTarget(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "")

	target, err := sut.LoadTarget("missing")

	assert.Nil(t, target)
	assert.ErrorContains(t, err, "target 'missing' not found")
}

func TestFileSystemConfigRepository_SaveConfig_RoundTrip(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml")

	exists, err := sut.ConfigExists()
	require.NoError(t, err)
	assert.False(t, exists)

	config := domain.CreateDefaultConfig()
	config.Targets[0].BaseDir = "/projects/app/OpenCV/native/jni"
	require.NoError(t, sut.SaveConfig(&config))

	exists, err = sut.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := ProvideFileSystemConfigRepository(fs, "/work/abifix.yaml").LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, *loaded)
	assert.Contains(t, fs.Content(t, "/work/abifix.yaml"), "baseDir: /projects/app/OpenCV/native/jni")
}
