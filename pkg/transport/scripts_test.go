package transport

import (
	"strings"
	"testing"
)

func TestOpenComputerScriptGroups(t *testing.T) {
	script := strings.Join(OpenComputerScript(Groups{CPU: true, GPU: true}), "\n")

	for _, want := range []string{
		"$comp.CPUEnabled = $true",
		"$comp.GPUEnabled = $true",
		"$comp.MainboardEnabled = $false",
		"$comp.RAMEnabled = $false",
		"$comp.FanControllerEnabled = $false",
		"$comp.HDDEnabled = $false",
		"$comp.Open()",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("open script missing %q", want)
		}
	}

	// The snapshot output is bracketed as a Hardware-list.
	lines := OpenComputerScript(AllGroups())
	if lines[8] != "'['" || lines[len(lines)-1] != "']'" {
		t.Errorf("open script output is not bracketed: %q ... %q", lines[8], lines[len(lines)-1])
	}
}

func TestUpdateHardwareScriptEscapesIdentifier(t *testing.T) {
	script := strings.Join(UpdateHardwareScript("/it's/0"), "\n")

	if !strings.Contains(script, "$ohmObjs['/it''s/0']") {
		t.Errorf("identifier not quoted for embedding: %q", script)
	}
}

func TestSetControlScripts(t *testing.T) {
	defaultScript := SetControlDefaultScript("/gpu/control/0")
	if len(defaultScript) != 1 || defaultScript[0] != "$ohmObjs['/gpu/control/0'].SetDefault()" {
		t.Errorf("SetControlDefaultScript: got %q", defaultScript)
	}

	softwareScript := SetControlSoftwareScript("/gpu/control/0", 42.5)
	if len(softwareScript) != 1 || softwareScript[0] != "$ohmObjs['/gpu/control/0'].SetSoftware(42.5)" {
		t.Errorf("SetControlSoftwareScript: got %q", softwareScript)
	}
}

func TestBootstrapScriptLoadsLibrary(t *testing.T) {
	script := strings.Join(bootstrapScript(`C:\tools\OpenHardwareMonitorLib.dll`), "\n")

	if !strings.Contains(script, `[System.Reflection.Assembly]::LoadFile('C:\tools\OpenHardwareMonitorLib.dll')`) {
		t.Error("bootstrap script does not load the library path")
	}
	if !strings.Contains(script, "function Initialize-And-Write-Hardware") ||
		!strings.Contains(script, "function Update-And-Write-Sensor-Values") {
		t.Error("bootstrap script does not define the session functions")
	}
}
