package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of an external tool
type Status struct {
	Installed bool
	Path      string
	Version   string
}

// CheckParec checks if parec is installed and returns its status
func CheckParec() Status {
	return check("parec", "--version")
}

// CheckPactl checks if pactl is installed and returns its status
func CheckPactl() Status {
	return check("pactl", "--version")
}

// CheckNotifySend checks if notify-send is installed and returns its status
func CheckNotifySend() Status {
	return check("notify-send", "--version")
}

func check(tool, versionFlag string) Status {
	path, err := exec.LookPath(tool)
	if err != nil {
		return Status{Installed: false}
	}

	status := Status{
		Installed: true,
		Path:      path,
	}

	// first line of the version output identifies the build
	output, err := exec.Command(path, versionFlag).Output()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}
