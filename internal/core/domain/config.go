package domain

const (
	// DefaultContainerRuntime is the container CLI used for delegated builds.
	DefaultContainerRuntime = "docker"

	// DefaultMesonSpec is the pip requirement used to install Meson.
	DefaultMesonSpec = "git+https://github.com/mesonbuild/meson"

	// BuildDir is the Meson build directory, relative to the working directory.
	BuildDir = "builddir"

	// SetupLog and TestLog are the log files Meson writes into <BuildDir>/meson-logs.
	SetupLog = "meson-log.txt"
	TestLog  = "testlog.txt"
)

// DefaultContainerCommand re-invokes mesonci inside the container.
// The working directory is mounted at ContainerMountTarget.
var DefaultContainerCommand = []string{ContainerMountTarget + "/.ci/mesonci", "run"}

// ForwardedEnv lists the variables passed into delegated container builds when set.
var ForwardedEnv = []string{"LIBFFI_TEST_OPTIMIZATION", "QEMU_CPU"}

// Config holds every input of a CI run.
// It is read once from the environment and passed explicitly afterwards.
type Config struct {
	// Host is the target triple, e.g. "x86_64-linux-gnu" or "moxie-elf".
	Host string
	// ConfigureOptions carries autotools-style flags; only --disable-shared is honoured.
	ConfigureOptions string
	// TestOptimization is a whitespace separated list of optimisation levels for the test suite.
	TestOptimization string

	AndroidNDKRoot  string
	AndroidAPILevel string

	// Forwarded holds the ForwardedEnv variables that were present, even if empty.
	Forwarded map[string]string

	// Workdir is mounted into delegated container builds.
	Workdir string

	ContainerRuntime string
	ContainerCommand []string
	MesonSpec        string

	IgnoreTestsErrors bool
	DryRun            bool
}
