package transport

import (
	"fmt"

	"github.com/ohm-protocol/ohm-go/pkg/wire"
)

// privilegeCheckCommand asks the shell whether the session runs with
// administrator rights. The monitoring library reads hardware registers
// and refuses to work without them.
const privilegeCheckCommand = "([Security.Principal.WindowsPrincipal] [Security.Principal.WindowsIdentity]::GetCurrent()).IsInRole([Security.Principal.WindowsBuiltInRole]::Administrator)"

// bootstrapScript loads the monitoring library and defines the session
// functions that render the bracket-delimited line format. $ohmObjs keeps
// every initialized hardware, sensor and control object keyed by
// identifier so later batches can reference them.
func bootstrapScript(libraryPath string) []string {
	return []string{
		"[System.Reflection.Assembly]::LoadFile(" + wire.QuoteString(libraryPath) + ")",
		"$ohmObjs = @{}",
		"function Initialize-And-Write-Hardware ($h) {",
		"    $h.Update()",
		"    $ohmObjs[$h.Identifier.ToString()] = $h",
		"    '{'",
		"    $h.Identifier",
		"    $h.Name",
		"    $h.HardwareType",
		"    '['",
		"    foreach ($sh in $h.SubHardware) {",
		"        Initialize-And-Write-Hardware $sh",
		"    }",
		"    ']'",
		"    '['",
		"    foreach ($s in $h.Sensors) {",
		"        $ohmObjs[$s.Identifier.ToString()] = $s",
		"        '{'",
		"        $s.Identifier",
		"        $s.Name",
		"        $s.SensorType",
		"        $s.Value.ToString([System.Globalization.CultureInfo]::InvariantCulture)",
		"        $c = $s.Control",
		"        if ($c) {",
		"            $ohmObjs[$c.Identifier.ToString()] = $c",
		"            '{'",
		"            $c.Identifier",
		"            $c.MinSoftwareValue.ToString([System.Globalization.CultureInfo]::InvariantCulture)",
		"            $c.MaxSoftwareValue.ToString([System.Globalization.CultureInfo]::InvariantCulture)",
		"            '}'",
		"        } else {",
		"            ''",
		"        }",
		"        '}'",
		"    }",
		"    ']'",
		"    '}'",
		"}",
		"function Update-And-Write-Sensor-Values ($h) {",
		"    $h.Update()",
		"    foreach ($sh in $h.SubHardware) {",
		"        Update-And-Write-Sensor-Values $sh",
		"    }",
		"    foreach ($s in $h.Sensors) {",
		"        '{'",
		"        $s.Identifier",
		"        $s.Value.ToString([System.Globalization.CultureInfo]::InvariantCulture)",
		"        '}'",
		"    }",
		"}",
	}
}

// OpenComputerScript renders the batch that opens the computer object with
// the selected hardware groups and emits the full initial snapshot as a
// Hardware-list.
func OpenComputerScript(groups Groups) []string {
	return []string{
		"$comp = New-Object OpenHardwareMonitor.Hardware.Computer",
		fmt.Sprintf("$comp.MainboardEnabled = %s", powershellBool(groups.Mainboard)),
		fmt.Sprintf("$comp.CPUEnabled = %s", powershellBool(groups.CPU)),
		fmt.Sprintf("$comp.RAMEnabled = %s", powershellBool(groups.RAM)),
		fmt.Sprintf("$comp.GPUEnabled = %s", powershellBool(groups.GPU)),
		fmt.Sprintf("$comp.FanControllerEnabled = %s", powershellBool(groups.FanController)),
		fmt.Sprintf("$comp.HDDEnabled = %s", powershellBool(groups.HDD)),
		"$comp.Open()",
		"'['",
		"foreach ($h in $comp.Hardware) {",
		"    Initialize-And-Write-Hardware $h",
		"}",
		"']'",
	}
}

// UpdateAllScript renders the batch that refreshes every hardware subtree
// and emits an Update-list covering all sensors.
func UpdateAllScript() []string {
	return []string{
		"'['",
		"foreach ($h in $comp.Hardware) {",
		"    Update-And-Write-Sensor-Values $h",
		"}",
		"']'",
	}
}

// UpdateHardwareScript renders the batch that refreshes one hardware node
// and its descendants, identified by the identifier captured at open.
func UpdateHardwareScript(identifier string) []string {
	return []string{
		"'['",
		"Update-And-Write-Sensor-Values $ohmObjs[" + wire.QuoteString(identifier) + "]",
		"']'",
	}
}

// SetControlDefaultScript renders the command returning a control to the
// hardware's own management. No structured response is produced.
func SetControlDefaultScript(identifier string) []string {
	return []string{
		"$ohmObjs[" + wire.QuoteString(identifier) + "].SetDefault()",
	}
}

// SetControlSoftwareScript renders the command driving a control to a
// software-set value. The value is passed through unclamped.
func SetControlSoftwareScript(identifier string, value float64) []string {
	return []string{
		"$ohmObjs[" + wire.QuoteString(identifier) + "].SetSoftware(" + wire.FormatValue(value) + ")",
	}
}

func powershellBool(v bool) string {
	if v {
		return "$true"
	}
	return "$false"
}
