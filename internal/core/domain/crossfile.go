package domain

import "strings"

// Cross-file template placeholders.
const (
	PlaceholderHost            = "@HOST@"
	PlaceholderCPU             = "@CPU@"
	PlaceholderCPUFamily       = "@CPU_FAMILY@"
	PlaceholderAndroidNDKRoot  = "@ANDROID_NDK_ROOT@"
	PlaceholderAndroidAPILevel = "@ANDROID_API_LEVEL@"
)

// CrossVars are the values substituted into a cross-file template.
type CrossVars struct {
	Host            string `yaml:"host"`
	CPU             string `yaml:"cpu"`
	CPUFamily       string `yaml:"cpu_family"`
	AndroidNDKRoot  string `yaml:"android_ndk_root,omitempty"`
	AndroidAPILevel string `yaml:"android_api_level,omitempty"`
}

// NewCrossVars derives the template values for host.
func NewCrossVars(host, ndkRoot, apiLevel string) CrossVars {
	cpu := HostCPU(host)
	return CrossVars{
		Host:            host,
		CPU:             cpu,
		CPUFamily:       CPUFamily(cpu),
		AndroidNDKRoot:  ndkRoot,
		AndroidAPILevel: apiLevel,
	}
}

// RenderCrossFile substitutes every placeholder in template.
// Replacement is literal; substituted values are never rescanned.
func RenderCrossFile(template string, vars CrossVars) string {
	r := strings.NewReplacer(
		PlaceholderHost, vars.Host,
		PlaceholderCPUFamily, vars.CPUFamily,
		PlaceholderCPU, vars.CPU,
		PlaceholderAndroidNDKRoot, vars.AndroidNDKRoot,
		PlaceholderAndroidAPILevel, vars.AndroidAPILevel,
	)
	return r.Replace(template)
}

// CrossFileSpec describes a descriptor generated for one run.
type CrossFileSpec struct {
	Template string    `yaml:"template"`
	Output   string    `yaml:"output"`
	Vars     CrossVars `yaml:"vars"`
}
