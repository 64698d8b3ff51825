package ports

import "context"

// BuildSystem drives the configure, compile and test steps of the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_system.go -destination=mocks/mock_build_system.go -package=mocks
type BuildSystem interface {
	Setup(ctx context.Context, options []string) error
	Compile(ctx context.Context) error
	Test(ctx context.Context) error
}

// LogPrinter surfaces the build system's log files.
type LogPrinter interface {
	// Print writes the named log file to the output. Missing files are skipped.
	Print(name string) error
}

// ToolInstaller provisions the build tools before a native build.
type ToolInstaller interface {
	// Install provisions Meson from mesonSpec (a pip requirement) and its backend.
	Install(ctx context.Context, mesonSpec string) error
}
