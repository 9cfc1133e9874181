//go:build wireinject
// +build wireinject

package app

import (
	"abifix/internal/adapters/console"
	"abifix/internal/adapters/filesystem"
	"abifix/internal/core"
	"abifix/internal/core/handler"
	"abifix/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	console.ProvideConsoleReporter,
	wire.Bind(new(ports.Reporter), new(*console.ConsoleReporter)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvidePathRewriter,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo(configPath core.ConfigPath) (core.ConfigRepository, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectFixCommandHandler(configPath core.ConfigPath) (handler.FixCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideFixCommandHandler,
	)
	return handler.FixCommandHandler{}, nil
}

func InjectInitializeCommandHandler(configPath core.ConfigPath) (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectConfigCommandHandler(configPath core.ConfigPath) (handler.ConfigCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideConfigCommandHandler,
	)
	return handler.ConfigCommandHandler{}, nil
}
