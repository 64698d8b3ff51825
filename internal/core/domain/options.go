package domain

// Library kinds accepted by --default-library.
const (
	LibraryBoth   = "both"
	LibraryStatic = "static"
)

// MesonOptions builds the argument list passed to meson setup.
// Later options override earlier ones on the Meson side, so order is preserved.
type MesonOptions struct {
	args []string
}

// NewMesonOptions returns the baseline option set: both static and shared libraries.
func NewMesonOptions() *MesonOptions {
	return (&MesonOptions{}).DefaultLibrary(LibraryBoth)
}

// DefaultLibrary appends --default-library=kind.
func (o *MesonOptions) DefaultLibrary(kind string) *MesonOptions {
	o.args = append(o.args, "--default-library="+kind)
	return o
}

// CrossFile appends --cross-file=path.
func (o *MesonOptions) CrossFile(path string) *MesonOptions {
	o.args = append(o.args, "--cross-file="+path)
	return o
}

// Define appends a project option as -Dkey=value.
func (o *MesonOptions) Define(key, value string) *MesonOptions {
	o.args = append(o.args, "-D"+key+"="+value)
	return o
}

// Append adds raw arguments.
func (o *MesonOptions) Append(args ...string) *MesonOptions {
	o.args = append(o.args, args...)
	return o
}

// Args returns a copy of the accumulated arguments.
func (o *MesonOptions) Args() []string {
	out := make([]string, len(o.args))
	copy(out, o.args)
	return out
}
