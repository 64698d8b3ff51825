package domain

// ContainerMountTarget is where the working directory is mounted inside the container.
const ContainerMountTarget = "/opt"

// ContainerInvocation is a fully resolved delegated build.
type ContainerInvocation struct {
	// Runtime is the container CLI, DefaultContainerRuntime when empty.
	Runtime string `yaml:"runtime"`
	Image   string `yaml:"image"`
	// Mount is the host directory mounted at ContainerMountTarget.
	Mount string `yaml:"mount"`
	// Env is sorted by name.
	Env     []EnvVar `yaml:"env"`
	Command []string `yaml:"command"`
}

// Args renders the container runtime arguments, without the runtime binary itself.
func (c *ContainerInvocation) Args() []string {
	args := []string{
		"run", "--rm", "-t",
		"-v", c.Mount + ":" + ContainerMountTarget,
		"--workdir", ContainerMountTarget,
	}
	for _, e := range c.Env {
		args = append(args, "-e", e.Name+"="+e.Value)
	}
	args = append(args, c.Image)
	return append(args, c.Command...)
}
